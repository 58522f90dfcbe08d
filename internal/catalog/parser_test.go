package catalog

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openabit/advisor/internal/model"
)

const programPageHTML = `<html><body>
<span class="AboutProgram_aboutProgram__description__Bf9LA">Создавайте AI-продукты и технологии, которые меняют мир.</span>
<a href="/viewfaculty?id=1">Институт прикладных компьютерных наук</a>
<div class="Information_card__rshys"><div>очная</div><p>Форма обучения</p></div>
<div class="Information_card__rshys"><div>2 года</div><p>Длительность</p></div>
<div class="Information_card__rshys"><div>английский</div><p>Язык обучения</p></div>
<div class="Information_card__rshys"><div>599 000 ₽</div><p>Стоимость контрактного обучения</p></div>
<div class="Information_card__rshys"><div>да</div><p>Общежитие</p></div>
<div class="Information_card__rshys"><div>есть</div><p>Военный учебный центр</p></div>
<div class="Information_card__rshys"><div>нет</div><p>Гос. аккредитация</p></div>
</body></html>`

func parseTestDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseProgram(t *testing.T) {
	doc := parseTestDoc(t, programPageHTML)

	program := parseProgram(doc, aiProgramName, AIProgramURL, staticAICourses())

	assert.Equal(t, aiProgramName, program.Name)
	assert.Equal(t, AIProgramURL, program.URL)
	assert.Equal(t, "Создавайте AI-продукты и технологии, которые меняют мир.", program.Description)
	assert.Equal(t, "Институт прикладных компьютерных наук", program.Institute)
	assert.Equal(t, "очная", program.Form)
	assert.Equal(t, 4, program.Duration)
	assert.Equal(t, "английский", program.Language)
	assert.Equal(t, "599 000 ₽", program.Cost)
	assert.True(t, program.Dormitory)
	assert.True(t, program.MilitaryCenter)
	assert.False(t, program.Accreditation)
	assert.Len(t, program.Courses, 15)
}

func TestParseProgramDefaults(t *testing.T) {
	doc := parseTestDoc(t, "<html><body><p>пустая страница</p></body></html>")

	program := parseProgram(doc, productProgramName, ProductProgramURL, staticProductCourses())

	assert.Equal(t, defaultDescription, program.Description)
	assert.Equal(t, defaultInstitute, program.Institute)
	assert.Equal(t, "очная", program.Form)
	assert.Equal(t, "русский", program.Language)
	assert.Equal(t, 4, program.Duration)
	assert.Empty(t, program.Cost)
	assert.False(t, program.Dormitory)
}

func TestExtractDescriptionFallbackChain(t *testing.T) {
	// No hashed class, but a loose description class matches.
	doc := parseTestDoc(t, `<html><body><div class="program-description">Описание программы из запасного селектора</div></body></html>`)
	assert.Equal(t, "Описание программы из запасного селектора", extractDescription(doc))
}

func TestExtractDescriptionSkipsShortMatches(t *testing.T) {
	doc := parseTestDoc(t, `<html><body><span class="AboutProgram_aboutProgram__description__Bf9LA">коротко</span></body></html>`)
	assert.Equal(t, defaultDescription, extractDescription(doc))
}

func TestParseInfoCardDurationVariants(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "two years", value: "2 года", want: 4},
		{name: "four semesters", value: "4 семестра", want: 4},
		{name: "one year", value: "1 год", want: 2},
		{name: "unrecognized keeps default", value: "какой-то срок", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseTestDoc(t, `<html><body><div class="Information_card__rshys"><div>`+tt.value+`</div><p>Длительность</p></div></body></html>`)
			info := extractInfo(doc)
			assert.Equal(t, tt.want, info.Duration)
		})
	}
}

func TestStaticCatalog(t *testing.T) {
	programs := Static()
	require.Len(t, programs, 2)

	ai, product := programs[0], programs[1]

	assert.Equal(t, aiProgramName, ai.Name)
	assert.Len(t, ai.Courses, 15)
	assert.Equal(t, productProgramName, product.Name)
	assert.Len(t, product.Courses, 15)

	// Every course carries a known category and lands in semesters 1-4.
	for _, p := range programs {
		for _, c := range p.Courses {
			assert.Contains(t, []model.CourseCategory{
				model.CourseRequired, model.CourseElective, model.CourseOptional,
			}, c.Category, "course %q", c.Name)
			assert.GreaterOrEqual(t, c.Semester, 1)
			assert.LessOrEqual(t, c.Semester, 4)
			assert.Greater(t, c.Credits, 0)
		}
	}
}

func TestBaselineCourses(t *testing.T) {
	assert.Len(t, baselineCourses("ai"), 5)
	assert.Len(t, baselineCourses("ai_product"), 5)
	assert.Equal(t, "Введение в ИИ", baselineCourses("ai")[0].Name)
	assert.Equal(t, "Введение в AI Product Management", baselineCourses("ai_product")[0].Name)
}
