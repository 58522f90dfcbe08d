// Package profile extracts a structured applicant profile from a
// free-text self-description via keyword classification.
package profile

import (
	"strings"

	"github.com/openabit/advisor/internal/knowledge"
	"github.com/openabit/advisor/internal/model"
)

// Extractor turns raw text into a BackgroundProfile. It is a pure
// function over the knowledge tables: same input, same profile. It
// never fails; empty or non-matching input yields the defaults.
type Extractor struct {
	negation NegationDetector
}

// NewExtractor creates an extractor with the default global negation
// detector.
func NewExtractor() *Extractor {
	return &Extractor{negation: NewGlobalNegation(knowledge.NegationPhrases())}
}

// NewExtractorWithNegation creates an extractor with a custom negation
// detector.
func NewExtractorWithNegation(nd NegationDetector) *Extractor {
	return &Extractor{negation: nd}
}

// Extract analyzes the self-description and returns a complete profile.
func (e *Extractor) Extract(text string) model.BackgroundProfile {
	lower := strings.ToLower(text)

	return model.BackgroundProfile{
		ProgrammingSkills:   e.programmingSkills(lower),
		MathSkills:          matchGroups(lower, knowledge.MathSkillGroups()),
		BusinessSkills:      matchGroups(lower, knowledge.BusinessSkillGroups()),
		ResearchInterests:   matchWords(lower, knowledge.ResearchKeywords()),
		WorkExperience:      workExperience(lower),
		EducationLevel:      educationLevel(lower),
		CareerGoals:         matchGroups(lower, knowledge.CareerGoalGroups()),
		LearningPreferences: matchGroups(lower, knowledge.LearningPreferenceGroups()),
		TimeAvailability:    timeAvailability(lower),
	}
}

// programmingSkills applies the negation detector on top of the plain
// keyword match. Negation only applies to this category.
func (e *Extractor) programmingSkills(lower string) []string {
	var skills []string
	for _, group := range knowledge.ProgrammingSkillGroups() {
		phrase, ok := firstMatch(lower, group.Phrases)
		if !ok {
			continue
		}
		if e.negation != nil && e.negation.Suppresses(lower, phrase) {
			continue
		}
		skills = append(skills, group.Tag)
	}
	return skills
}

func matchGroups(lower string, groups []knowledge.KeywordGroup) []string {
	var tags []string
	for _, group := range groups {
		if _, ok := firstMatch(lower, group.Phrases); ok {
			tags = append(tags, group.Tag)
		}
	}
	return tags
}

func matchWords(lower string, words []string) []string {
	var matched []string
	for _, w := range words {
		if strings.Contains(lower, w) {
			matched = append(matched, w)
		}
	}
	return matched
}

func workExperience(lower string) model.WorkExperience {
	if _, ok := firstMatch(lower, knowledge.WorkExperiencePhrases()); ok {
		return model.ExperienceSome
	}
	return model.ExperienceNone
}

func educationLevel(lower string) model.EducationLevel {
	for _, group := range knowledge.EducationLevelGroups() {
		if _, ok := firstMatch(lower, group.Phrases); ok {
			return group.Level
		}
	}
	return model.EducationBachelor
}

func timeAvailability(lower string) model.TimeAvailability {
	for _, group := range knowledge.TimeAvailabilityGroups() {
		if _, ok := firstMatch(lower, group.Phrases); ok {
			return group.Value
		}
	}
	return model.TimeStandard
}

// firstMatch returns the first phrase contained in the text.
func firstMatch(lower string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return p, true
		}
	}
	return "", false
}
