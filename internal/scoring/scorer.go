// Package scoring evaluates one course against one applicant profile
// and produces a Recommendation. Scoring is deterministic and
// side-effect free.
package scoring

import (
	"strings"

	"github.com/openabit/advisor/internal/knowledge"
	"github.com/openabit/advisor/internal/model"
)

// Score thresholds for priority tiers.
const (
	HighScoreThreshold   = 7.0
	MediumScoreThreshold = 4.0
	LowScoreThreshold    = 2.0
	maxScore             = 10.0
	scoreFloor           = 1.0
)

// Scorer evaluates courses against profiles using the knowledge
// registry. Safe for concurrent use: all state is read-only.
type Scorer struct {
	skills  map[string]model.SkillMapEntry
	reasons []ReasonRule
}

// NewScorer creates a scorer over the default knowledge tables.
func NewScorer() *Scorer {
	return &Scorer{
		skills:  knowledge.Skills(),
		reasons: sortReasonRules(ReasonRules()),
	}
}

// Score produces a recommendation for the course. Every contributing
// term is additive; within each profile category the first matching
// path wins and further checks are skipped. The result's score and
// compatibility score are always in [0, 10] and never both zero: a
// course with no signal at all gets the floor score.
func (s *Scorer) Score(course model.Course, p model.BackgroundProfile) model.Recommendation {
	name := strings.ToLower(course.Name)

	var score, compat float64

	sc, cc := s.skillCategoryTerm(name, p.ProgrammingSkills, knowledge.TechnicalCourseTerms())
	score, compat = score+sc, compat+cc

	sc, cc = s.skillCategoryTerm(name, p.MathSkills, knowledge.MathCourseTerms())
	score, compat = score+sc, compat+cc

	sc, cc = s.skillCategoryTerm(name, p.BusinessSkills, knowledge.BusinessCourseTerms())
	score, compat = score+sc, compat+cc

	score += s.careerGoalTerm(name, p.CareerGoals)

	if len(p.ResearchInterests) > 0 && containsAny(name, knowledge.ResearchCourseTerms()) {
		score += 1.5
	}

	if p.WorkExperience == model.ExperienceSome && containsAny(name, knowledge.PracticalCourseTerms()) {
		score += 1.0
	}

	if (p.EducationLevel == model.EducationMaster || p.EducationLevel == model.EducationDoctoral) &&
		containsAny(name, knowledge.AdvancedMaterialTerms()) {
		score += 1.0
	}

	score += difficultyAdjustment(name, p)

	floored := false
	if score == 0 {
		score = scoreFloor
		floored = true
	}

	priority := priorityFor(score)
	reason := s.reasonFor(course, p, score, floored)

	return model.Recommendation{
		Course:             course,
		Score:              clamp(score),
		CompatibilityScore: clamp(compat),
		Reason:             reason,
		Priority:           priority,
		LearningPath:       learningPath(course.Semester),
	}
}

// skillCategoryTerm walks the category's skill tags in order. For each
// tag the skill-map keyword list is tried first (scoring the tag's
// weight), then the category's generic list (scoring a flat 2.0). The
// first hit on either path ends the category.
func (s *Scorer) skillCategoryTerm(name string, tags []string, generic []string) (score, compat float64) {
	for _, tag := range tags {
		if entry, ok := s.skills[tag]; ok && containsAny(name, entry.Keywords) {
			return entry.Weight, entry.Weight
		}
		if containsAny(name, generic) {
			return 2.0, 2.0
		}
	}
	return 0, 0
}

// careerGoalTerm adds 1.5 per career goal that both appears in a skill
// entry's career paths and whose skill keywords hit the course name.
func (s *Scorer) careerGoalTerm(name string, goals []string) float64 {
	var term float64
	for _, goal := range goals {
		for _, entry := range s.skills {
			if hasCareer(entry.CareerPaths, goal) && containsAny(name, entry.Keywords) {
				term += 1.5
				break
			}
		}
	}
	return term
}

// difficultyAdjustment models perceived difficulty: a base by course
// name, reduced by 1.0 for every profile skill category overlapping
// the course. The adjustment is added to the score, never used to
// filter.
func difficultyAdjustment(name string, p model.BackgroundProfile) float64 {
	var base float64
	switch {
	case containsAny(name, knowledge.IntroDifficultyTerms()):
		base = 1.0
	case containsAny(name, knowledge.AdvancedDifficultyTerms()):
		base = 3.0
	default:
		base = 2.0
	}

	if len(p.ProgrammingSkills) > 0 && containsAny(name, knowledge.ProgrammingOverlapTerms()) {
		base -= 1.0
	}
	if len(p.MathSkills) > 0 && containsAny(name, knowledge.MathOverlapTerms()) {
		base -= 1.0
	}
	if len(p.BusinessSkills) > 0 && containsAny(name, knowledge.BusinessOverlapTerms()) {
		base -= 1.0
	}

	return base
}

func priorityFor(score float64) model.Priority {
	switch {
	case score >= HighScoreThreshold:
		return model.PriorityHigh
	case score >= MediumScoreThreshold:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxScore {
		return maxScore
	}
	return v
}

// learningPath is purely a function of the semester index.
func learningPath(semester int) string {
	switch semester {
	case 1:
		return "Рекомендуется изучать в первую очередь (1 семестр)"
	case 2:
		return "Изучать после освоения базовых дисциплин (2 семестр)"
	case 3:
		return "Изучать после освоения основных дисциплин (3 семестр)"
	case 4:
		return "Изучать в завершающем семестре (4 семестр)"
	default:
		return "Можно изучать в любом порядке"
	}
}

func hasCareer(paths []string, goal string) bool {
	for _, p := range paths {
		if strings.EqualFold(p, goal) {
			return true
		}
	}
	return false
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
