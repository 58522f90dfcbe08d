package model

// Priority tiers a single course recommendation by its final score.
type Priority string

const (
	// PriorityHigh marks scores at or above 7.0.
	PriorityHigh Priority = "high"
	// PriorityMedium marks scores in [4.0, 7.0).
	PriorityMedium Priority = "medium"
	// PriorityLow marks everything below 4.0.
	PriorityLow Priority = "low"
)

// Recommendation is the result of evaluating one course against one
// profile. Never mutated after construction.
type Recommendation struct {
	Course             Course
	Reason             string
	LearningPath       string
	Priority           Priority
	Score              float64
	CompatibilityScore float64
}

// SkillMapEntry links a skill tag to the course keywords it matches,
// its scoring weight and the careers it feeds into.
type SkillMapEntry struct {
	Keywords    []string
	CareerPaths []string
	Weight      float64
}
