package advisor

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/openabit/advisor/internal/knowledge"
	"github.com/openabit/advisor/internal/model"
)

// Compare renders one paragraph per catalog program with institute,
// course count, credits, duration and the admission facts.
func (a *Advisor) Compare() string {
	var b strings.Builder
	b.WriteString("📊 Сравнение магистерских программ:\n\n")

	for _, p := range a.programs {
		fmt.Fprintf(&b, "🎯 %s\n", p.Name)
		fmt.Fprintf(&b, "🏛️  Институт: %s\n", p.Institute)
		fmt.Fprintf(&b, "📚 Всего дисциплин: %d\n", len(p.Courses))
		fmt.Fprintf(&b, "🎓 Общее количество кредитов: %d\n", p.TotalCredits())
		fmt.Fprintf(&b, "⏱ Длительность: %d семестра\n", p.Duration)
		fmt.Fprintf(&b, "📖 Форма обучения: %s\n", p.Form)
		fmt.Fprintf(&b, "🌍 Язык обучения: %s\n", p.Language)

		if p.Cost != "" {
			fmt.Fprintf(&b, "💰 Стоимость: %s\n", p.Cost)
		}

		fmt.Fprintf(&b, "🏠 Общежитие: %s\n", yesNo(p.Dormitory))
		fmt.Fprintf(&b, "🎖️  Военный учебный центр: %s\n", yesNo(p.MilitaryCenter))
		fmt.Fprintf(&b, "✅ Гос. аккредитация: %s\n\n", yesNo(p.Accreditation))
	}

	return b.String()
}

// Detail renders the curriculum of one program grouped by semester and
// then by course category. Category groups keep course encounter
// order within a semester.
func (a *Advisor) Detail(name string) (string, error) {
	program, err := a.FindProgram(name)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎯 %s\n", program.Name)
	fmt.Fprintf(&b, "🏛️  Институт: %s\n", program.Institute)
	fmt.Fprintf(&b, "📖 Описание: %s...\n\n", truncate(program.Description, 200))

	bySemester := make(map[int][]model.Course)
	for _, c := range program.Courses {
		bySemester[c.Semester] = append(bySemester[c.Semester], c)
	}

	semesters := make([]int, 0, len(bySemester))
	for s := range bySemester {
		semesters = append(semesters, s)
	}
	sort.Ints(semesters)

	for _, semester := range semesters {
		courses := bySemester[semester]
		fmt.Fprintf(&b, "📅 %d семестр (%d дисциплин):\n", semester, len(courses))

		var order []model.CourseCategory
		byCategory := make(map[model.CourseCategory][]model.Course)
		for _, c := range courses {
			if _, seen := byCategory[c.Category]; !seen {
				order = append(order, c.Category)
			}
			byCategory[c.Category] = append(byCategory[c.Category], c)
		}

		for _, category := range order {
			fmt.Fprintf(&b, "   📖 %s:\n", titleCase(string(category)))
			for _, c := range byCategory[category] {
				fmt.Fprintf(&b, "      • %s (%d кредитов)\n", c.Name, c.Credits)
			}
		}

		b.WriteString("\n")
	}

	return b.String(), nil
}

// Recommend extracts a profile from the free-text self-description and
// renders one verdict line per program whose topic is recognized.
func (a *Advisor) Recommend(text string) string {
	archetype := Archetype(a.extractor.Extract(text))

	var b strings.Builder
	b.WriteString("💡 Рекомендации по дисциплинам:\n\n")

	for _, p := range a.programs {
		v, ok := knowledge.VerdictFor(p.Name, archetype)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "🎯 %s: %s %s\n", p.Name, v.Emoji, v.Text)
	}

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Да"
	}
	return "Нет"
}

// truncate cuts at a rune boundary, never mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
