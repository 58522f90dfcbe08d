// Package model defines the catalog and recommendation types shared across the application.
package model

// CourseCategory indicates how a discipline is counted toward the curriculum.
type CourseCategory string

const (
	// CourseRequired represents mandatory disciplines.
	CourseRequired CourseCategory = "обязательная"
	// CourseElective represents disciplines chosen by the student.
	CourseElective CourseCategory = "выборная"
	// CourseOptional represents optional (facultative) disciplines.
	CourseOptional CourseCategory = "факультативная"
)

// Course represents a single curriculum discipline. Immutable once loaded.
type Course struct {
	Name          string
	Description   string
	Category      CourseCategory
	Prerequisites []string
	Credits       int
	Semester      int
}
