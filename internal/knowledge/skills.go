// Package knowledge holds the static lookup tables the engine is built
// on: the skill map, the cluster catalog, the extractor keyword tables
// and the program verdict table. One registry feeds every consumer so
// the tables cannot drift apart. All tables are read-only after load.
package knowledge

import "github.com/openabit/advisor/internal/model"

// Skills returns the skill map: skill tag → matching course keywords,
// scoring weight and associated career paths. Unknown tags are simply
// absent; lookups never fail.
//
// Tags use the historical English identifiers while extractor tags for
// math and business categories are Russian, so those categories reach
// courses only through the generic keyword lists. Kept as-is: changing
// the key space would change scores.
func Skills() map[string]model.SkillMapEntry {
	return map[string]model.SkillMapEntry{
		"python": {
			Keywords:    []string{"программирование", "python", "код", "разработка"},
			Weight:      2.0,
			CareerPaths: []string{"ML Engineer", "Data Scientist", "AI Developer"},
		},
		"java": {
			Keywords:    []string{"java", "джава", "программирование", "код"},
			Weight:      1.5,
			CareerPaths: []string{"Software Engineer", "Backend Developer"},
		},
		"javascript": {
			Keywords:    []string{"javascript", "js", "веб", "web", "frontend"},
			Weight:      1.5,
			CareerPaths: []string{"Frontend Developer", "Full-Stack Developer"},
		},
		"mathematics": {
			Keywords:    []string{"математика", "алгебра", "геометрия", "анализ"},
			Weight:      2.0,
			CareerPaths: []string{"ML Engineer", "Data Scientist", "AI Researcher"},
		},
		"statistics": {
			Keywords:    []string{"статистика", "вероятность", "анализ данных"},
			Weight:      2.5,
			CareerPaths: []string{"Data Scientist", "Data Analyst", "ML Engineer"},
		},
		"linear_algebra": {
			Keywords:    []string{"линейная алгебра", "матрицы", "векторы"},
			Weight:      2.0,
			CareerPaths: []string{"ML Engineer", "Computer Vision Engineer", "AI Researcher"},
		},
		"business": {
			Keywords:    []string{"бизнес", "менеджмент", "управление", "стратегия"},
			Weight:      1.5,
			CareerPaths: []string{"Product Manager", "AI Product Manager", "Business Analyst"},
		},
		"product_management": {
			Keywords:    []string{"продукт", "product", "управление продуктами"},
			Weight:      2.0,
			CareerPaths: []string{"Product Manager", "AI Product Manager"},
		},
		"research": {
			Keywords:    []string{"исследование", "наука", "анализ", "публикация"},
			Weight:      1.5,
			CareerPaths: []string{"AI Researcher", "Data Scientist", "ML Engineer"},
		},
		"general": {
			Keywords: []string{
				"техническое", "технический", "инженер", "инженерный",
				"разработка", "разработчик", "программирование", "код",
			},
			Weight:      1.5,
			CareerPaths: []string{"Software Engineer", "ML Engineer", "AI Developer"},
		},
		"c++": {
			Keywords:    []string{"c++", "cpp", "си плюс плюс", "программирование", "код", "разработка"},
			Weight:      1.5,
			CareerPaths: []string{"Software Engineer", "Backend Developer", "ML Engineer"},
		},
		"web": {
			Keywords:    []string{"веб", "web", "html", "css", "frontend", "backend", "fullstack"},
			Weight:      1.5,
			CareerPaths: []string{"Frontend Developer", "Full-Stack Developer", "Web Developer"},
		},
		"mobile": {
			Keywords:    []string{"мобильная разработка", "android", "ios", "react native", "flutter"},
			Weight:      1.5,
			CareerPaths: []string{"Mobile Developer", "App Developer"},
		},
		"blockchain": {
			Keywords:    []string{"блокчейн", "blockchain", "криптовалюта", "смарт-контракт", "defi"},
			Weight:      1.5,
			CareerPaths: []string{"Blockchain Developer", "Smart Contract Developer"},
		},
		"ai": {
			Keywords: []string{
				"искусственный интеллект", "ai", "машинное обучение",
				"нейронные сети", "data science",
			},
			Weight:      2.0,
			CareerPaths: []string{"ML Engineer", "AI Developer", "Data Scientist"},
		},
		"data": {
			Keywords:    []string{"данные", "data", "анализ данных", "big data", "база данных"},
			Weight:      2.0,
			CareerPaths: []string{"Data Scientist", "Data Engineer", "Data Analyst"},
		},
		"devops": {
			Keywords:    []string{"devops", "инфраструктура", "docker", "kubernetes", "ci/cd"},
			Weight:      1.5,
			CareerPaths: []string{"DevOps Engineer", "Infrastructure Engineer"},
		},
	}
}
