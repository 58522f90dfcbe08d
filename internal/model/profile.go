package model

// WorkExperience classifies the applicant's professional background.
type WorkExperience string

const (
	// ExperienceNone is the default when no work signal is found.
	ExperienceNone WorkExperience = "нет опыта"
	// ExperienceSome indicates the text mentions professional experience.
	ExperienceSome WorkExperience = "есть опыт"
)

// EducationLevel classifies the applicant's prior education.
type EducationLevel string

const (
	// EducationBachelor is the baseline education level.
	EducationBachelor EducationLevel = "бакалавриат"
	// EducationMaster indicates a completed or ongoing master's degree.
	EducationMaster EducationLevel = "магистратура"
	// EducationDoctoral indicates postgraduate study.
	EducationDoctoral EducationLevel = "аспирантура"
	// EducationTechnical indicates a technical/engineering education.
	EducationTechnical EducationLevel = "техническое"
)

// TimeAvailability classifies how much time the applicant can commit.
type TimeAvailability string

const (
	// TimeStandard is the default availability.
	TimeStandard TimeAvailability = "стандартная"
	// TimeFull indicates full-time availability.
	TimeFull TimeAvailability = "полный день"
	// TimePartial indicates evening/part-time availability.
	TimePartial TimeAvailability = "частичная"
)

// BackgroundProfile is an immutable snapshot extracted from one free-text
// self-description. Created per request, never persisted.
type BackgroundProfile struct {
	WorkExperience      WorkExperience
	EducationLevel      EducationLevel
	TimeAvailability    TimeAvailability
	ProgrammingSkills   []string
	MathSkills          []string
	BusinessSkills      []string
	ResearchInterests   []string
	CareerGoals         []string
	LearningPreferences []string
}

// HasProgramming reports whether any programming skill tag matched.
func (p BackgroundProfile) HasProgramming(tag string) bool {
	for _, s := range p.ProgrammingSkills {
		if s == tag {
			return true
		}
	}
	return false
}

// HasMath reports whether the given math skill tag matched.
func (p BackgroundProfile) HasMath(tag string) bool {
	for _, s := range p.MathSkills {
		if s == tag {
			return true
		}
	}
	return false
}

// HasBusiness reports whether the given business skill tag matched.
func (p BackgroundProfile) HasBusiness(tag string) bool {
	for _, s := range p.BusinessSkills {
		if s == tag {
			return true
		}
	}
	return false
}
