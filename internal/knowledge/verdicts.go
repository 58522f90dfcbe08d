package knowledge

import (
	"strings"

	"github.com/openabit/advisor/internal/model"
)

// ProgramTopic is the coarse program classification used by the
// verdict table.
type ProgramTopic string

const (
	// TopicAI covers the AI engineering track.
	TopicAI ProgramTopic = "ai"
	// TopicProduct covers the AI product management track.
	TopicProduct ProgramTopic = "product"
	// TopicUnknown means the program name matched no track pattern.
	TopicUnknown ProgramTopic = ""
)

// TopicOf classifies a program by its name.
func TopicOf(programName string) ProgramTopic {
	name := strings.ToLower(programName)
	switch {
	case strings.Contains(name, "искусственный интеллект"),
		strings.Contains(name, "ai") && !strings.Contains(name, "product"):
		return TopicAI
	case strings.Contains(name, "продукт"), strings.Contains(name, "product"):
		return TopicProduct
	default:
		return TopicUnknown
	}
}

// Verdict is one qualitative program-fit line for an archetype.
type Verdict struct {
	Emoji string
	Text  string
}

// verdictTable maps (topic, archetype) to a verdict. This is a second,
// deliberately coarse scoring pass independent of the per-course
// scorer; the two views are not reconciled.
var verdictTable = map[ProgramTopic]map[model.Archetype]Verdict{
	TopicAI: {
		model.ArchetypePythonDev: {Emoji: "🔥", Text: "ЛУЧШИЙ ВЫБОР! Python + ML = идеальная комбинация"},
		model.ArchetypeJavaDev:   {Emoji: "⭐", Text: "Хорошо подходит! Enterprise AI с Java"},
		model.ArchetypeTechDev:   {Emoji: "⭐", Text: "Хорошо подходит! Ваши навыки программирования"},
		model.ArchetypeMath:      {Emoji: "🔥", Text: "ЛУЧШИЙ ВЫБОР! Математика = основа ML"},
		model.ArchetypeBusiness:  {Emoji: "💡", Text: "Можно рассмотреть, но не идеально"},
		model.ArchetypeBeginner:  {Emoji: "💡", Text: "Хороший выбор для начала"},
	},
	TopicProduct: {
		model.ArchetypePythonDev: {Emoji: "⭐", Text: "Хорошо подходит! Программирование + продукт"},
		model.ArchetypeJavaDev:   {Emoji: "⭐", Text: "Хорошо подходит! Программирование + продукт"},
		model.ArchetypeTechDev:   {Emoji: "⭐", Text: "Хорошо подходит! Техника + бизнес"},
		model.ArchetypeMath:      {Emoji: "💡", Text: "Можно рассмотреть, но не идеально"},
		model.ArchetypeBusiness:  {Emoji: "🔥", Text: "ЛУЧШИЙ ВЫБОР! Бизнес + AI = идеально"},
		model.ArchetypeBeginner:  {Emoji: "💡", Text: "Хороший выбор для начала"},
	},
}

// VerdictFor returns the program-fit verdict for an archetype, and
// false when the program's topic is unknown.
func VerdictFor(programName string, archetype model.Archetype) (Verdict, bool) {
	topic := TopicOf(programName)
	if topic == TopicUnknown {
		return Verdict{}, false
	}
	v, ok := verdictTable[topic][archetype]
	return v, ok
}
