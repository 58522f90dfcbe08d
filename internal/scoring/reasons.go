package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openabit/advisor/internal/model"
)

// ReasonRule produces a concrete recommendation sentence when its
// profile predicate holds and any of its course terms appears in the
// course name. Rules are evaluated by descending priority; the first
// match wins.
type ReasonRule struct {
	When        func(model.BackgroundProfile) bool
	Text        string
	CourseTerms []string
	Priority    int
}

// ReasonRules returns the ordered reason rule table.
func ReasonRules() []ReasonRule {
	hasGoal := func(names ...string) func(model.BackgroundProfile) bool {
		return func(p model.BackgroundProfile) bool {
			for _, g := range p.CareerGoals {
				for _, n := range names {
					if strings.EqualFold(g, n) {
						return true
					}
				}
			}
			return false
		}
	}

	return []ReasonRule{
		// Programming archetypes
		{
			Priority:    100,
			When:        func(p model.BackgroundProfile) bool { return p.HasProgramming("python") },
			CourseTerms: []string{"машинное обучение", "нейронные сети"},
			Text:        "Отличный выбор для Python-разработчиков! Этот курс даст вам практические навыки в ML",
		},
		{
			Priority:    99,
			When:        func(p model.BackgroundProfile) bool { return p.HasProgramming("python") },
			CourseTerms: []string{"обработка", "зрение"},
			Text:        "Идеально подходит для Python-программистов. Вы сможете применить свои навыки в AI",
		},
		{
			Priority:    98,
			When:        func(p model.BackgroundProfile) bool { return p.HasProgramming("python") },
			CourseTerms: []string{"алгоритм"},
			Text:        "Ваш опыт в Python поможет быстро освоить алгоритмы и структуры данных",
		},
		{
			Priority:    97,
			When:        func(p model.BackgroundProfile) bool { return p.HasProgramming("java") },
			CourseTerms: []string{"машинное обучение"},
			Text:        "Отличный выбор! Java отлично подходит для enterprise ML-решений",
		},
		{
			Priority:    96,
			When:        func(p model.BackgroundProfile) bool { return p.HasProgramming("java") },
			CourseTerms: []string{"алгоритм"},
			Text:        "Ваши навыки в Java помогут эффективно реализовать алгоритмы",
		},
		// Math background
		{
			Priority:    90,
			When:        func(p model.BackgroundProfile) bool { return p.HasMath("математика") },
			CourseTerms: []string{"машинное обучение", "нейронные сети"},
			Text:        "Ваша математическая база идеальна для понимания ML-алгоритмов",
		},
		{
			Priority:    89,
			When:        func(p model.BackgroundProfile) bool { return p.HasMath("математика") },
			CourseTerms: []string{"статистика"},
			Text:        "Математическое образование поможет глубоко понять статистические методы",
		},
		{
			Priority:    88,
			When:        func(p model.BackgroundProfile) bool { return p.HasMath("математика") },
			CourseTerms: []string{"оптимизация"},
			Text:        "Математические навыки дадут вам преимущество в изучении оптимизации",
		},
		// Business background
		{
			Priority:    80,
			When:        func(p model.BackgroundProfile) bool { return p.HasBusiness("менеджмент") },
			CourseTerms: []string{"продукт", "проект"},
			Text:        "Отличный выбор для менеджеров! Курс поможет управлять AI-проектами",
		},
		{
			Priority:    79,
			When:        func(p model.BackgroundProfile) bool { return p.HasBusiness("менеджмент") },
			CourseTerms: []string{"бизнес"},
			Text:        "Ваш бизнес-опыт поможет понять, как применять AI в реальных проектах",
		},
		// Career goals
		{
			Priority:    70,
			When:        hasGoal("ML Engineer", "AI Developer"),
			CourseTerms: []string{"машинное обучение", "нейронные сети"},
			Text:        "Обязательный курс для ML Engineer! Даст ключевые навыки для карьеры",
		},
		{
			Priority:    69,
			When:        hasGoal("ML Engineer", "AI Developer"),
			CourseTerms: []string{"алгоритм"},
			Text:        "Важно для ML Engineer: понимание алгоритмов критично для разработки моделей",
		},
		{
			Priority:    68,
			When:        hasGoal("Data Scientist"),
			CourseTerms: []string{"статистика", "анализ"},
			Text:        "Ключевой курс для Data Scientist! Статистика - основа анализа данных",
		},
		{
			Priority:    67,
			When:        hasGoal("Data Scientist"),
			CourseTerms: []string{"машинное обучение"},
			Text:        "Обязательно для Data Scientist! ML - основной инструмент в работе",
		},
		{
			Priority:    66,
			When:        hasGoal("Product Manager", "AI Product Manager"),
			CourseTerms: []string{"продукт", "менеджмент"},
			Text:        "Идеально для Product Manager! Поможет управлять AI-продуктами",
		},
		{
			Priority:    65,
			When:        hasGoal("Product Manager", "AI Product Manager"),
			CourseTerms: []string{"бизнес"},
			Text:        "Важно для PM: понимание бизнес-аспектов AI-проектов",
		},
		// Work experience
		{
			Priority:    60,
			When:        func(p model.BackgroundProfile) bool { return p.WorkExperience == model.ExperienceSome },
			CourseTerms: []string{"практика", "проект"},
			Text:        "Ваш опыт работы поможет успешно выполнять практические задания",
		},
		{
			Priority:    59,
			When:        func(p model.BackgroundProfile) bool { return p.WorkExperience == model.ExperienceSome },
			CourseTerms: []string{"реальный"},
			Text:        "Опыт работы даст вам преимущество в понимании реальных применений",
		},
		// Education level
		{
			Priority:    50,
			When:        func(p model.BackgroundProfile) bool { return p.EducationLevel == model.EducationMaster },
			CourseTerms: []string{"продвинутый", "углубленный"},
			Text:        "Подходит для вашего уровня! Магистратура даст вам базу для сложных курсов",
		},
	}
}

// reasonFor selects the recommendation sentence: the first matching
// rule from the ordered table, otherwise a generic sentence keyed on
// the score tier. A floored score always reports the baseline reason.
func (s *Scorer) reasonFor(course model.Course, p model.BackgroundProfile, score float64, floored bool) string {
	if floored {
		return "Базовый курс для всех студентов"
	}

	name := strings.ToLower(course.Name)
	for _, rule := range s.reasons {
		if rule.When(p) && containsAny(name, rule.CourseTerms) {
			return rule.Text
		}
	}

	switch {
	case score >= MediumScoreThreshold:
		if len(p.ProgrammingSkills) > 0 {
			return fmt.Sprintf("Отличный выбор для %s-разработчика! Курс идеально подходит вашему профилю", p.ProgrammingSkills[0])
		}
		if len(p.MathSkills) > 0 {
			return fmt.Sprintf("Отличный выбор! Ваши знания в %s помогут быстро освоить материал", p.MathSkills[0])
		}
		return "Отличный выбор! Курс хорошо соответствует вашему профилю"
	case score >= LowScoreThreshold:
		if p.WorkExperience == model.ExperienceSome {
			return "Хороший выбор для расширения кругозора. Ваш опыт работы поможет в освоении"
		}
		return "Хороший выбор для развития новых навыков. Рекомендуем дополнительную подготовку"
	default:
		return "Курс может быть сложным для вашего профиля, но это отличная возможность для роста!"
	}
}

// sortReasonRules orders the table by descending priority. Exposed for
// construction so the table literal can stay grouped by theme.
func sortReasonRules(rules []ReasonRule) []ReasonRule {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules
}
