package knowledge

// Generic per-category course keyword lists used by the scorer's
// second matching path when a profile skill has no skill-map hit.

// TechnicalCourseTerms is the generic list for programming skills.
func TechnicalCourseTerms() []string {
	return []string{
		"программирование", "код", "разработка", "алгоритм", "python",
		"java", "javascript", "ai", "data", "blockchain",
		"машинное обучение", "глубокое обучение", "нейронные сети",
		"обработка", "зрение", "анализ",
	}
}

// MathCourseTerms is the generic list for math skills.
func MathCourseTerms() []string {
	return []string{
		"математика", "статистика", "анализ", "алгоритм", "алгебра",
		"геометрия", "машинное обучение", "глубокое обучение",
		"нейронные сети", "обработка", "зрение", "вероятности",
	}
}

// BusinessCourseTerms is the generic list for business skills.
func BusinessCourseTerms() []string {
	return []string{"менеджмент", "бизнес", "продукт", "проект", "управление", "стратегия"}
}

// ResearchCourseTerms mark a course as research-related.
func ResearchCourseTerms() []string {
	return []string{"исследование", "наука", "анализ"}
}

// PracticalCourseTerms mark a course as practice/project oriented.
func PracticalCourseTerms() []string {
	return []string{"практика", "проект", "реальный"}
}

// AdvancedMaterialTerms mark a course as advanced-level material.
func AdvancedMaterialTerms() []string {
	return []string{"продвинутый", "углубленный", "исследование"}
}

// IntroDifficultyTerms lower a course's base difficulty to 1.0.
func IntroDifficultyTerms() []string {
	return []string{"введение", "основы", "базовые"}
}

// AdvancedDifficultyTerms raise a course's base difficulty to 3.0.
func AdvancedDifficultyTerms() []string {
	return []string{"продвинутый", "углубленный", "специальные"}
}

// ProgrammingOverlapTerms reduce perceived difficulty for programmers.
func ProgrammingOverlapTerms() []string {
	return []string{"программирование", "код", "разработка"}
}

// MathOverlapTerms reduce perceived difficulty for math backgrounds.
func MathOverlapTerms() []string {
	return []string{"математика", "алгебра", "статистика"}
}

// BusinessOverlapTerms reduce perceived difficulty for business backgrounds.
func BusinessOverlapTerms() []string {
	return []string{"бизнес", "менеджмент", "управление"}
}
