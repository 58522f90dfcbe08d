package knowledge

import "github.com/openabit/advisor/internal/model"

// Cluster keys. The assignment rules and the verdict logic reference
// clusters by these keys, never by display name.
const (
	ClusterAICore            = "ai_core"
	ClusterMachineLearning   = "machine_learning"
	ClusterDeepLearning      = "deep_learning"
	ClusterNLP               = "nlp"
	ClusterComputerVision    = "computer_vision"
	ClusterBusinessAI        = "business_ai"
	ClusterProductManagement = "product_management"
	ClusterDataAnalytics     = "data_analytics"
)

// Clusters returns the eight fixed topic buckets with empty course
// lists. The cluster assigner fills them once at catalog load.
func Clusters() map[string]*model.CourseCluster {
	return map[string]*model.CourseCluster{
		ClusterAICore: {
			Key:             ClusterAICore,
			Name:            "Основы искусственного интеллекта",
			Difficulty:      model.DifficultyIntermediate,
			Prerequisites:   []string{"программирование", "математика"},
			CareerRelevance: []string{"ML Engineer", "AI Developer", "Data Scientist"},
		},
		ClusterMachineLearning: {
			Key:             ClusterMachineLearning,
			Name:            "Машинное обучение",
			Difficulty:      model.DifficultyAdvanced,
			Prerequisites:   []string{"ai_core", "статистика", "линейная алгебра"},
			CareerRelevance: []string{"ML Engineer", "Data Scientist", "AI Researcher"},
		},
		ClusterDeepLearning: {
			Key:             ClusterDeepLearning,
			Name:            "Глубокое обучение",
			Difficulty:      model.DifficultyAdvanced,
			Prerequisites:   []string{"machine_learning", "нейронные сети"},
			CareerRelevance: []string{"ML Engineer", "AI Researcher", "Computer Vision Engineer"},
		},
		ClusterNLP: {
			Key:             ClusterNLP,
			Name:            "Обработка естественного языка",
			Difficulty:      model.DifficultyAdvanced,
			Prerequisites:   []string{"machine_learning", "лингвистика"},
			CareerRelevance: []string{"NLP Engineer", "AI Developer", "Data Scientist"},
		},
		ClusterComputerVision: {
			Key:             ClusterComputerVision,
			Name:            "Компьютерное зрение",
			Difficulty:      model.DifficultyAdvanced,
			Prerequisites:   []string{"machine_learning", "линейная алгебра"},
			CareerRelevance: []string{"Computer Vision Engineer", "AI Developer", "ML Engineer"},
		},
		ClusterBusinessAI: {
			Key:             ClusterBusinessAI,
			Name:            "AI в бизнесе",
			Difficulty:      model.DifficultyIntermediate,
			Prerequisites:   []string{"ai_core", "бизнес-аналитика"},
			CareerRelevance: []string{"AI Product Manager", "Business Analyst", "Product Manager"},
		},
		ClusterProductManagement: {
			Key:             ClusterProductManagement,
			Name:            "Управление продуктами",
			Difficulty:      model.DifficultyIntermediate,
			Prerequisites:   []string{"бизнес-аналитика", "менеджмент"},
			CareerRelevance: []string{"Product Manager", "AI Product Manager", "Business Analyst"},
		},
		ClusterDataAnalytics: {
			Key:             ClusterDataAnalytics,
			Name:            "Анализ данных",
			Difficulty:      model.DifficultyIntermediate,
			Prerequisites:   []string{"статистика", "программирование"},
			CareerRelevance: []string{"Data Analyst", "Business Analyst", "Data Scientist"},
		},
	}
}

// AssignmentRule buckets a course into a cluster by its name. Rules are
// evaluated top-to-bottom; the first rule whose Keywords (and, when
// present, Qualifiers) all land in the course name wins. A rule with an
// empty Cluster swallows the course without assigning it.
type AssignmentRule struct {
	Cluster    string
	Keywords   []string // any of these must appear
	Qualifiers []string // when non-empty, any of these must also appear
	Priority   int
}

// AssignmentRules returns the ordered cluster assignment rules. Group
// order is fixed: introductory → ML → deep learning → NLP → vision →
// business → analytics. Keyword collisions are resolved by this order,
// not by best match.
func AssignmentRules() []AssignmentRule {
	intro := []string{"введение", "основы", "базовые"}
	business := []string{"бизнес", "предпринимательство", "стратегия"}
	return []AssignmentRule{
		{Priority: 100, Keywords: intro, Qualifiers: []string{"искусственный интеллект", "ai"}, Cluster: ClusterAICore},
		{Priority: 99, Keywords: intro, Qualifiers: []string{"продукт", "менеджмент"}, Cluster: ClusterProductManagement},
		{Priority: 98, Keywords: intro, Qualifiers: []string{"анализ", "данные"}, Cluster: ClusterDataAnalytics},
		// Introductory courses without a qualifier stay unclustered and
		// must not leak into the later groups.
		{Priority: 97, Keywords: intro, Cluster: ""},
		{Priority: 90, Keywords: []string{"машинное обучение", "ml", "machine learning"}, Cluster: ClusterMachineLearning},
		{Priority: 85, Keywords: []string{"глубокое обучение", "deep learning", "нейронные сети"}, Cluster: ClusterDeepLearning},
		{Priority: 80, Keywords: []string{"естественный язык", "nlp", "текст"}, Cluster: ClusterNLP},
		{Priority: 75, Keywords: []string{"зрение", "vision", "изображения"}, Cluster: ClusterComputerVision},
		{Priority: 70, Keywords: business, Qualifiers: []string{"ai", "искусственный интеллект"}, Cluster: ClusterBusinessAI},
		{Priority: 69, Keywords: business, Cluster: ClusterProductManagement},
		{Priority: 60, Keywords: []string{"анализ", "данные", "статистика"}, Cluster: ClusterDataAnalytics},
	}
}
