// Package advisor is the engine facade: it wires the profile
// extractor, cluster index and course scorer over one immutable
// catalog and renders the report strings returned to callers.
package advisor

import (
	"sort"
	"strings"

	"github.com/openabit/advisor/internal/cluster"
	"github.com/openabit/advisor/internal/common"
	"github.com/openabit/advisor/internal/knowledge"
	"github.com/openabit/advisor/internal/model"
	"github.com/openabit/advisor/internal/profile"
	"github.com/openabit/advisor/internal/scoring"
)

// Advisor answers program comparison, detail, recommendation, career
// and admission queries over a fixed catalog. All state is built at
// construction and never mutated afterwards, so one instance may be
// shared by concurrent callers.
type Advisor struct {
	extractor *profile.Extractor
	scorer    *scoring.Scorer
	clusters  *cluster.Index
	programs  []model.Program
}

// New builds an advisor over the catalog. The cluster index is built
// exactly once here; rebuilding requires a new advisor.
func New(programs []model.Program) (*Advisor, error) {
	if len(programs) == 0 {
		return nil, common.ErrEmptyCatalog
	}

	return &Advisor{
		extractor: profile.NewExtractor(),
		scorer:    scoring.NewScorer(),
		clusters:  cluster.New(programs),
		programs:  programs,
	}, nil
}

// Programs returns the catalog the advisor was built from.
func (a *Advisor) Programs() []model.Program {
	return a.programs
}

// ExtractProfile exposes the profile extractor for callers that want
// structured data rather than report strings.
func (a *Advisor) ExtractProfile(text string) model.BackgroundProfile {
	return a.extractor.Extract(text)
}

// FindProgram locates a program by case-insensitive substring match
// against program names. The first catalog match wins.
func (a *Advisor) FindProgram(name string) (model.Program, error) {
	needle := strings.ToLower(name)
	for _, p := range a.programs {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p, nil
		}
	}
	return model.Program{}, common.ErrProgramNotFound
}

// SearchPrograms finds programs whose name, description or any course
// name contains the keywords.
func (a *Advisor) SearchPrograms(keywords string) []model.Program {
	needle := strings.ToLower(keywords)
	var matched []model.Program

	for _, p := range a.programs {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			matched = append(matched, p)
			continue
		}
		for _, c := range p.Courses {
			if strings.Contains(strings.ToLower(c.Name), needle) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// Archetype derives the coarse applicant category with fixed
// precedence: programming first, then math, then business, otherwise
// beginner.
func Archetype(p model.BackgroundProfile) model.Archetype {
	switch {
	case len(p.ProgrammingSkills) > 0:
		switch {
		case p.HasProgramming("python"):
			return model.ArchetypePythonDev
		case p.HasProgramming("java"):
			return model.ArchetypeJavaDev
		default:
			return model.ArchetypeTechDev
		}
	case len(p.MathSkills) > 0:
		return model.ArchetypeMath
	case len(p.BusinessSkills) > 0:
		return model.ArchetypeBusiness
	default:
		return model.ArchetypeBeginner
	}
}

// RankCourses scores a program's elective set against the profile and
// returns recommendations sorted by descending score. Ties keep
// catalog order. Selection prefers elective and optional courses, then
// everything non-required, then the full course list.
func (a *Advisor) RankCourses(program model.Program, p model.BackgroundProfile) []model.Recommendation {
	courses := electiveSet(program.Courses)

	recs := make([]model.Recommendation, 0, len(courses))
	for _, c := range courses {
		recs = append(recs, a.scorer.Score(c, p))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	return recs
}

func electiveSet(courses []model.Course) []model.Course {
	var selected []model.Course
	for _, c := range courses {
		if c.Category == model.CourseElective || c.Category == model.CourseOptional {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		for _, c := range courses {
			if c.Category != model.CourseRequired {
				selected = append(selected, c)
			}
		}
	}
	if len(selected) == 0 {
		selected = courses
	}
	return selected
}

// ClusterGuidance returns coarse "what to study next" lines based on
// which clusters received courses and what the profile signals.
func (a *Advisor) ClusterGuidance(p model.BackgroundProfile) string {
	var b strings.Builder

	if len(p.ProgrammingSkills) > 0 && len(p.MathSkills) > 0 {
		if a.clusters.HasCourses(knowledge.ClusterAICore) {
			b.WriteString("      🧠 Основы ИИ - отличный старт для программистов\n")
		}
		if a.clusters.HasCourses(knowledge.ClusterMachineLearning) {
			b.WriteString("      🤖 Машинное обучение - ключевое направление\n")
		}
	}

	if len(p.BusinessSkills) > 0 {
		if a.clusters.HasCourses(knowledge.ClusterBusinessAI) {
			b.WriteString("      💼 AI в бизнесе - примените ИИ на практике\n")
		}
		if a.clusters.HasCourses(knowledge.ClusterProductManagement) {
			b.WriteString("      📊 Управление продуктами - развивайте бизнес-навыки\n")
		}
	}

	if len(p.ResearchInterests) > 0 && a.clusters.HasCourses(knowledge.ClusterDeepLearning) {
		b.WriteString("      🔬 Глубокое обучение - для исследователей\n")
	}

	if b.Len() == 0 {
		return "      📚 Рекомендуем изучать дисциплины последовательно по семестрам\n"
	}
	return b.String()
}
