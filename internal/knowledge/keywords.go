package knowledge

import "github.com/openabit/advisor/internal/model"

// KeywordGroup binds a profile tag to the phrases that signal it.
// Groups are evaluated in slice order so extraction stays deterministic.
type KeywordGroup struct {
	Tag     string
	Phrases []string
}

// NegationPhrases suppress programming-skill matches when found
// anywhere in the input. The check is global, not scoped to the matched
// phrase; a known false-negative source kept for compatibility.
func NegationPhrases() []string {
	return []string{"не знаю", "не умею", "не понимаю", "не владею", "не программирую"}
}

// ProgrammingSkillGroups returns the programming-skill detection table.
func ProgrammingSkillGroups() []KeywordGroup {
	return []KeywordGroup{
		{Tag: "python", Phrases: []string{"python", "питон", "программирую на python", "знаю python", "работаю с python"}},
		{Tag: "java", Phrases: []string{"java", "джава", "программирую на java", "знаю java", "работаю с java"}},
		{Tag: "c++", Phrases: []string{"c++", "cpp", "си плюс плюс", "программирую на c++", "знаю c++"}},
		{Tag: "javascript", Phrases: []string{"javascript", "js", "джаваскрипт", "программирую на js", "знаю js"}},
		{Tag: "web", Phrases: []string{"веб", "web", "html", "css", "frontend", "backend", "fullstack", "веб-разработка", "делаю сайты"}},
		{Tag: "mobile", Phrases: []string{"мобильная разработка", "android", "ios", "react native", "flutter", "мобильные приложения", "разрабатываю приложения"}},
		{Tag: "blockchain", Phrases: []string{"блокчейн", "blockchain", "криптовалюта", "смарт-контракт", "defi"}},
		{Tag: "ai", Phrases: []string{"искусственный интеллект", "ai", "машинное обучение", "нейронные сети", "data science"}},
		{Tag: "data", Phrases: []string{"данные", "data", "анализ данных", "big data", "база данных", "работаю с данными"}},
		{Tag: "devops", Phrases: []string{"devops", "инфраструктура", "docker", "kubernetes", "ci/cd", "развертывание"}},
		{Tag: "general", Phrases: []string{"техническое", "технический", "инженер", "инженерный", "разработка", "разработчик", "программирование", "код", "программист"}},
	}
}

// MathSkillGroups returns the math-skill detection table.
func MathSkillGroups() []KeywordGroup {
	return []KeywordGroup{
		{Tag: "математика", Phrases: []string{"математика", "математический", "алгебра", "геометрия", "анализ", "математик", "хорошо знаю математику", "силен в математике", "люблю математику"}},
		{Tag: "статистика", Phrases: []string{"статистика", "статистический", "вероятность", "математическая статистика", "работаю со статистикой", "анализирую данные"}},
		{Tag: "линейная алгебра", Phrases: []string{"линейная алгебра", "матрицы", "векторы", "линейные преобразования"}},
		{Tag: "математический анализ", Phrases: []string{"математический анализ", "дифференциальные уравнения", "интегралы"}},
		{Tag: "дискретная математика", Phrases: []string{"дискретная математика", "комбинаторика", "теория графов"}},
		{Tag: "алгоритмы", Phrases: []string{"алгоритм", "алгоритмы", "структуры данных", "сложность", "оптимизация"}},
		{Tag: "логика", Phrases: []string{"логика", "логический", "теория множеств", "математическая логика"}},
	}
}

// BusinessSkillGroups returns the business-skill detection table.
func BusinessSkillGroups() []KeywordGroup {
	return []KeywordGroup{
		{Tag: "менеджмент", Phrases: []string{"менеджмент", "управление", "бизнес", "предпринимательство", "менеджер", "руковожу", "управляю командой", "работаю в менеджменте"}},
		{Tag: "маркетинг", Phrases: []string{"маркетинг", "реклама", "продвижение", "продажи", "маркетолог", "работаю в маркетинге", "занимаюсь продвижением"}},
		{Tag: "экономика", Phrases: []string{"экономика", "экономический", "финансы", "бухгалтерия", "экономист", "работаю с финансами"}},
		{Tag: "проектное управление", Phrases: []string{"проектное управление", "agile", "scrum", "kanban", "project manager", "управляю проектами", "работаю по agile"}},
		{Tag: "продукт", Phrases: []string{"продукт", "product", "продуктовая аналитика", "product manager", "работаю с продуктами", "продуктовый менеджер"}},
		{Tag: "стратегия", Phrases: []string{"стратегия", "стратегический", "планирование", "анализ рынка", "стратегическое планирование"}},
	}
}

// ResearchKeywords signal research interest; matched words become the
// profile's research-interest tags.
func ResearchKeywords() []string {
	return []string{"исследование", "наука", "публикация", "конференция", "статья", "лаборатория"}
}

// EducationLevelGroup binds an education level to its phrases.
type EducationLevelGroup struct {
	Level   model.EducationLevel
	Phrases []string
}

// EducationLevelGroups returns education detection in priority order;
// the first matching level wins, defaulting to bachelor.
func EducationLevelGroups() []EducationLevelGroup {
	return []EducationLevelGroup{
		{Level: model.EducationBachelor, Phrases: []string{"бакалавр", "бакалавриат", "высшее образование"}},
		{Level: model.EducationMaster, Phrases: []string{"магистр", "магистратура"}},
		{Level: model.EducationDoctoral, Phrases: []string{"аспирант", "аспирантура", "кандидат наук"}},
		{Level: model.EducationTechnical, Phrases: []string{"техническое образование", "технический", "инженерное", "инженерный", "техническое"}},
	}
}

// WorkExperiencePhrases flip the profile to "has experience" when any
// appears in the input.
func WorkExperiencePhrases() []string {
	return []string{
		"работаю", "работал", "опыт работы", "стаж", "программист",
		"разработчик", "инженер", "аналитик", "менеджер", "специалист",
		"опыт в разработке", "опыт разработки", "опыт", "разработка",
		"код", "программирование",
	}
}

// CareerGoalGroups returns the career-goal detection table. Tags are
// the career titles referenced by the skill map's CareerPaths.
func CareerGoalGroups() []KeywordGroup {
	return []KeywordGroup{
		{Tag: "ML Engineer", Phrases: []string{"ml engineer", "машинное обучение", "инженер ml", "ml разработчик"}},
		{Tag: "Data Scientist", Phrases: []string{"data scientist", "ученый по данным", "аналитик данных"}},
		{Tag: "AI Developer", Phrases: []string{"ai developer", "разработчик ии", "разработчик ai"}},
		{Tag: "Product Manager", Phrases: []string{"product manager", "продукт менеджер", "менеджер продукта"}},
		{Tag: "AI Product Manager", Phrases: []string{"ai product manager", "продукт менеджер ai"}},
		{Tag: "Business Analyst", Phrases: []string{"business analyst", "бизнес аналитик", "аналитик"}},
		{Tag: "AI Researcher", Phrases: []string{"ai researcher", "исследователь ии", "ученый ии"}},
	}
}

// LearningPreferenceGroups returns the learning-preference table.
func LearningPreferenceGroups() []KeywordGroup {
	return []KeywordGroup{
		{Tag: "практико-ориентированное", Phrases: []string{"практика", "проекты", "реальные задачи"}},
		{Tag: "теоретическое", Phrases: []string{"теория", "наука", "исследование"}},
		{Tag: "групповое", Phrases: []string{"группа", "команда", "совместно"}},
		{Tag: "индивидуальное", Phrases: []string{"индивидуально", "самостоятельно"}},
	}
}

// TimeAvailabilityGroup binds an availability value to its phrases.
type TimeAvailabilityGroup struct {
	Value   model.TimeAvailability
	Phrases []string
}

// TimeAvailabilityGroups returns availability detection in priority
// order, defaulting to standard.
func TimeAvailabilityGroups() []TimeAvailabilityGroup {
	return []TimeAvailabilityGroup{
		{Value: model.TimeFull, Phrases: []string{"полный день", "очная", "дневная"}},
		{Value: model.TimePartial, Phrases: []string{"вечерняя", "заочная", "частичная"}},
	}
}
