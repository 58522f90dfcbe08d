package model

// Program represents a master's program and the courses it owns.
type Program struct {
	Name           string
	URL            string
	Description    string
	Institute      string
	Form           string
	Language       string
	Cost           string
	Courses        []Course
	Duration       int // in semesters
	Dormitory      bool
	MilitaryCenter bool
	Accreditation  bool
}

// TotalCredits returns the summed credit weight of all owned courses.
func (p *Program) TotalCredits() int {
	total := 0
	for _, c := range p.Courses {
		total += c.Credits
	}
	return total
}
