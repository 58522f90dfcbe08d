package model

// Archetype is a coarse applicant category used only for program-level
// verdicts, not for per-course scoring.
type Archetype string

const (
	// ArchetypePythonDev is an applicant with Python skills.
	ArchetypePythonDev Archetype = "python_dev"
	// ArchetypeJavaDev is an applicant with Java skills.
	ArchetypeJavaDev Archetype = "java_dev"
	// ArchetypeTechDev is an applicant with other programming skills.
	ArchetypeTechDev Archetype = "tech_dev"
	// ArchetypeMath is an applicant with a math background and no programming.
	ArchetypeMath Archetype = "math_background"
	// ArchetypeBusiness is an applicant with a business background only.
	ArchetypeBusiness Archetype = "business_background"
	// ArchetypeBeginner is the default when nothing matched.
	ArchetypeBeginner Archetype = "beginner"
)
