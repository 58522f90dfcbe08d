package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openabit/advisor/internal/model"
)

func TestExtractProgrammingSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "python by name",
			text: "Я знаю Python и люблю его",
			want: []string{"python"},
		},
		{
			name: "python by cyrillic alias",
			text: "пишу на питоне третий год",
			want: []string{"python"},
		},
		{
			name: "multiple languages",
			text: "работаю с python и java",
			want: []string{"python", "java"},
		},
		{
			name: "generic programming signal",
			text: "я разработчик",
			want: []string{"general"},
		},
		{
			name: "negation suppresses everything",
			text: "я не знаю питон, но хорошо пишу на java",
			want: nil,
		},
		{
			name: "no signal",
			text: "люблю читать книги",
			want: nil,
		},
	}

	extractor := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.text)
			assert.Equal(t, tt.want, got.ProgrammingSkills)
		})
	}
}

func TestExtractDefaults(t *testing.T) {
	extractor := NewExtractor()
	p := extractor.Extract("")

	assert.Empty(t, p.ProgrammingSkills)
	assert.Empty(t, p.MathSkills)
	assert.Empty(t, p.BusinessSkills)
	assert.Empty(t, p.ResearchInterests)
	assert.Empty(t, p.CareerGoals)
	assert.Empty(t, p.LearningPreferences)
	assert.Equal(t, model.ExperienceNone, p.WorkExperience)
	assert.Equal(t, model.EducationBachelor, p.EducationLevel)
	assert.Equal(t, model.TimeStandard, p.TimeAvailability)
}

func TestExtractFullProfile(t *testing.T) {
	extractor := NewExtractor()
	p := extractor.Extract("Знаю Python и математику, работаю аналитиком, закончил магистратуру, хочу стать ML Engineer, могу учиться полный день")

	assert.Equal(t, []string{"python"}, p.ProgrammingSkills)
	assert.Contains(t, p.MathSkills, "математика")
	assert.Equal(t, model.ExperienceSome, p.WorkExperience)
	assert.Equal(t, model.EducationMaster, p.EducationLevel)
	assert.Contains(t, p.CareerGoals, "ML Engineer")
	assert.Equal(t, model.TimeFull, p.TimeAvailability)
}

func TestExtractIsCaseInsensitive(t *testing.T) {
	extractor := NewExtractor()

	lower := extractor.Extract("знаю python и статистику")
	upper := extractor.Extract("ЗНАЮ PYTHON И СТАТИСТИКУ")

	assert.Equal(t, lower, upper)
}

func TestExtractIsDeterministic(t *testing.T) {
	extractor := NewExtractor()
	text := "python, java, математика, менеджмент, исследование, работаю"

	first := extractor.Extract(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, extractor.Extract(text))
	}
}

func TestEducationLevelPrecedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.EducationLevel
	}{
		{name: "bachelor", text: "закончил бакалавриат", want: model.EducationBachelor},
		{name: "master", text: "я магистр", want: model.EducationMaster},
		{name: "doctoral", text: "учусь в аспирантуре", want: model.EducationDoctoral},
		// "высшее образование" sits in the bachelor group and wins over
		// later groups because groups are checked in order.
		{name: "bachelor wins over technical", text: "высшее образование, технический вуз", want: model.EducationBachelor},
		{name: "default", text: "ничего про учебу", want: model.EducationBachelor},
	}

	extractor := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.text)
			assert.Equal(t, tt.want, got.EducationLevel)
		})
	}
}

type denyAllNegation struct{}

func (denyAllNegation) Suppresses(_, _ string) bool { return true }

func TestCustomNegationDetector(t *testing.T) {
	extractor := NewExtractorWithNegation(denyAllNegation{})
	p := extractor.Extract("знаю python и java")

	// Negation applies only to programming skills.
	assert.Empty(t, p.ProgrammingSkills)

	p2 := extractor.Extract("знаю python и математику")
	assert.Contains(t, p2.MathSkills, "математика")
}

func TestGlobalNegationIgnoresPosition(t *testing.T) {
	nd := NewGlobalNegation([]string{"не знаю"})

	require.True(t, nd.Suppresses("я не знаю питон, но пишу на java", "java"))
	require.False(t, nd.Suppresses("пишу на java", "java"))
}

func BenchmarkExtractor_Extract(b *testing.B) {
	extractor := NewExtractor()
	text := "Я backend-разработчик, знаю Python и SQL, изучал статистику " +
		"и линейную алгебру в магистратуре, занимался исследованиями, " +
		"хочу стать ML-инженером, предпочитаю практические курсы"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		extractor.Extract(text)
	}
}
