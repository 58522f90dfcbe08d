package model

// Difficulty tiers a course cluster.
type Difficulty string

const (
	// DifficultyBeginner marks introductory clusters.
	DifficultyBeginner Difficulty = "beginner"
	// DifficultyIntermediate marks mid-tier clusters.
	DifficultyIntermediate Difficulty = "intermediate"
	// DifficultyAdvanced marks clusters requiring prior foundations.
	DifficultyAdvanced Difficulty = "advanced"
)

// CourseCluster is a named topic bucket of related courses. The course
// list only grows during catalog construction, never during scoring.
type CourseCluster struct {
	Key             string
	Name            string
	Difficulty      Difficulty
	Prerequisites   []string
	CareerRelevance []string
	Courses         []Course
}
