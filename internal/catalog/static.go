package catalog

import "github.com/openabit/advisor/internal/model"

// Program page URLs on the admissions site.
const (
	AIProgramURL      = "https://abit.itmo.ru/program/master/ai"
	ProductProgramURL = "https://abit.itmo.ru/program/master/ai_product"
)

const (
	aiProgramName      = "Магистратура 'Искусственный интеллект'"
	productProgramName = "Магистратура 'AI Product Management'"

	defaultDescription = "Программа магистратуры в области искусственного интеллекта и технологий"
	defaultInstitute   = "Институт прикладных компьютерных наук"
)

// The curriculum tables are not published in the program pages' HTML
// (only a PDF link), so course lists are curated here from the
// official study plans.

func staticAICourses() []model.Course {
	return []model.Course{
		// 1 семестр
		{Name: "Введение в искусственный интеллект", Credits: 3, Semester: 1, Category: model.CourseRequired},
		{Name: "Математические основы машинного обучения", Credits: 4, Semester: 1, Category: model.CourseRequired},
		{Name: "Программирование на Python для AI", Credits: 4, Semester: 1, Category: model.CourseRequired},
		{Name: "Статистика и вероятности", Credits: 3, Semester: 1, Category: model.CourseRequired},
		// 2 семестр
		{Name: "Машинное обучение", Credits: 6, Semester: 2, Category: model.CourseRequired},
		{Name: "Глубокое обучение", Credits: 6, Semester: 2, Category: model.CourseRequired},
		{Name: "Обработка естественного языка", Credits: 4, Semester: 2, Category: model.CourseElective},
		{Name: "Компьютерное зрение", Credits: 4, Semester: 2, Category: model.CourseElective},
		{Name: "Анализ данных", Credits: 4, Semester: 2, Category: model.CourseElective},
		// 3 семестр
		{Name: "Нейронные сети и архитектуры", Credits: 6, Semester: 3, Category: model.CourseRequired},
		{Name: "Этика искусственного интеллекта", Credits: 2, Semester: 3, Category: model.CourseOptional},
		{Name: "Проектная работа", Credits: 8, Semester: 3, Category: model.CourseRequired},
		{Name: "Научно-исследовательский семинар", Credits: 2, Semester: 3, Category: model.CourseOptional},
		// 4 семестр
		{Name: "Магистерская диссертация", Credits: 12, Semester: 4, Category: model.CourseRequired},
		{Name: "Защита выпускной работы", Credits: 2, Semester: 4, Category: model.CourseRequired},
	}
}

func staticProductCourses() []model.Course {
	return []model.Course{
		// 1 семестр
		{Name: "Введение в AI Product Management", Credits: 3, Semester: 1, Category: model.CourseRequired},
		{Name: "Основы машинного обучения для продуктов", Credits: 4, Semester: 1, Category: model.CourseRequired},
		{Name: "Управление продуктами", Credits: 4, Semester: 1, Category: model.CourseRequired},
		{Name: "Аналитика данных для бизнеса", Credits: 3, Semester: 1, Category: model.CourseRequired},
		// 2 семестр
		{Name: "AI в бизнесе", Credits: 6, Semester: 2, Category: model.CourseRequired},
		{Name: "Product Strategy", Credits: 4, Semester: 2, Category: model.CourseRequired},
		{Name: "User Experience Design", Credits: 4, Semester: 2, Category: model.CourseElective},
		{Name: "Метрики и KPI для AI продуктов", Credits: 4, Semester: 2, Category: model.CourseElective},
		{Name: "Agile и Scrum для AI проектов", Credits: 3, Semester: 2, Category: model.CourseElective},
		// 3 семестр
		{Name: "AI Product Development", Credits: 6, Semester: 3, Category: model.CourseRequired},
		{Name: "Бизнес-модели для AI продуктов", Credits: 3, Semester: 3, Category: model.CourseRequired},
		{Name: "Проектная работа", Credits: 8, Semester: 3, Category: model.CourseRequired},
		{Name: "Инновации в AI", Credits: 2, Semester: 3, Category: model.CourseOptional},
		// 4 семестр
		{Name: "Магистерская диссертация", Credits: 12, Semester: 4, Category: model.CourseRequired},
		{Name: "Защита выпускной работы", Credits: 2, Semester: 4, Category: model.CourseRequired},
	}
}

// baselineCourses is the last-resort curriculum used when even the
// curated list is unwanted (tests, minimal mode).
func baselineCourses(topic string) []model.Course {
	if topic == "ai" {
		return []model.Course{
			{Name: "Введение в ИИ", Credits: 3, Semester: 1, Category: model.CourseRequired},
			{Name: "Машинное обучение", Credits: 6, Semester: 1, Category: model.CourseRequired},
			{Name: "Глубокое обучение", Credits: 6, Semester: 2, Category: model.CourseRequired},
			{Name: "Проектная работа", Credits: 8, Semester: 3, Category: model.CourseRequired},
			{Name: "Магистерская диссертация", Credits: 12, Semester: 4, Category: model.CourseRequired},
		}
	}
	return []model.Course{
		{Name: "Введение в AI Product Management", Credits: 3, Semester: 1, Category: model.CourseRequired},
		{Name: "Основы машинного обучения", Credits: 6, Semester: 1, Category: model.CourseRequired},
		{Name: "Управление продуктами", Credits: 6, Semester: 2, Category: model.CourseRequired},
		{Name: "Проектная работа", Credits: 8, Semester: 3, Category: model.CourseRequired},
		{Name: "Магистерская диссертация", Credits: 12, Semester: 4, Category: model.CourseRequired},
	}
}

// Static returns the full catalog without network access. Page-derived
// fields carry their defaults.
func Static() []model.Program {
	return []model.Program{
		{
			Name:        aiProgramName,
			URL:         AIProgramURL,
			Description: defaultDescription,
			Institute:   defaultInstitute,
			Duration:    4,
			Form:        "очная",
			Language:    "русский",
			Courses:     staticAICourses(),
		},
		{
			Name:        productProgramName,
			URL:         ProductProgramURL,
			Description: defaultDescription,
			Institute:   defaultInstitute,
			Duration:    4,
			Form:        "очная",
			Language:    "русский",
			Courses:     staticProductCourses(),
		},
	}
}
