package advisor

import (
	"fmt"
	"strings"

	"github.com/openabit/advisor/internal/knowledge"
)

const aiCareerPaths = `
🎯 Карьерные пути для программы "Искусственный интеллект":

💼 ML Engineer (Middle уровень):
   • Создает и внедряет ML-модели в продакшен
   • Зарплата: 170,000 - 300,000 рублей
   • Компании: Яндекс, Сбер, МТС, Ozon

💼 Data Engineer:
   • Выстраивает процессы сбора, хранения и обработки данных
   • Зарплата: 150,000 - 280,000 рублей
   • Компании: X5 Group, Норникель, Napoleon IT

💼 AI Product Developer:
   • Разрабатывает продукты на основе AI
   • Зарплата: 180,000 - 320,000 рублей
   • Компании: Genotek, Raft, AIRI

💼 Data Analyst:
   • Анализирует массивы данных и помогает бизнесу принимать решения
   • Зарплата: 120,000 - 250,000 рублей
   • Компании: Wildberries, Huawei, Tinkoff Bank
`

const productCareerPaths = `
🎯 Карьерные пути для программы "AI Product Management":

💼 Product Manager:
   • Управляет разработкой AI-продуктов
   • Зарплата: 200,000 - 400,000 рублей
   • Компании: Яндекс, Сбер, МТС

💼 AI Product Owner:
   • Определяет требования к AI-продуктам
   • Зарплата: 180,000 - 350,000 рублей
   • Компании: Ozon, X5 Group, Норникель

💼 Business Analyst:
   • Анализирует бизнес-процессы и данные
   • Зарплата: 150,000 - 300,000 рублей
   • Компании: Napoleon IT, Genotek, Raft

💼 Innovation Manager:
   • Управляет инновационными проектами в сфере AI
   • Зарплата: 160,000 - 320,000 рублей
   • Компании: AIRI, DeepPavlov, Just AI
`

// CareerPaths returns the career track description for the program.
// Programs outside the two known tracks get an explanatory line rather
// than an error: the program itself was found.
func (a *Advisor) CareerPaths(name string) (string, error) {
	program, err := a.FindProgram(name)
	if err != nil {
		return "", err
	}

	switch knowledge.TopicOf(program.Name) {
	case knowledge.TopicAI:
		return aiCareerPaths, nil
	case knowledge.TopicProduct:
		return productCareerPaths, nil
	default:
		return "❌ Информация о карьерных путях недоступна для данной программы", nil
	}
}

// AdmissionInfo renders the admission routes for the program, with the
// program-specific cost and dormitory facts substituted in.
func (a *Advisor) AdmissionInfo(name string) (string, error) {
	program, err := a.FindProgram(name)
	if err != nil {
		return "", err
	}

	cost := program.Cost
	if cost == "" {
		cost = "Уточняйте на сайте"
	}
	dormitory := "Недоступно"
	if program.Dormitory {
		dormitory = "Доступно"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n🎓 Информация о поступлении на программу \"%s\":\n\n", program.Name)
	b.WriteString(`📋 Способы поступления:

1️⃣ Вступительный экзамен:
   • Дистанционный формат
   • 100-балльная шкала
   • Необходимо подать документы через личный кабинет

2️⃣ Junior ML Contest:
   • Конкурс проектов с применением ML
   • Курс "My First Data Project"
   • Поступление без экзаменов

3️⃣ Олимпиада "Я-профессионал":
   • Медалисты и победители поступают без экзаменов
   • Действует в год победы и следующий год

4️⃣ Конкурс "Портфолио":
   • Научные достижения и публикации
   • Нужно набрать более 85 баллов

5️⃣ МегаОлимпиада ИТМО:
   • Победители поступают без экзаменов
   • Действует в год проведения и следующий год

6️⃣ МегаШкола ИТМО:
   • Лекции и мастер-классы по актуальным направлениям
   • Победители поступают без экзаменов

📅 Даты вступительного экзамена:
   • Уточняйте на официальном сайте программы

`)
	fmt.Fprintf(&b, "💰 Стоимость обучения: %s\n", cost)
	fmt.Fprintf(&b, "🏠 Общежитие: %s\n", dormitory)

	return b.String(), nil
}
