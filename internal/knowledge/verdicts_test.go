package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openabit/advisor/internal/model"
)

func TestTopicOf(t *testing.T) {
	tests := []struct {
		name    string
		program string
		want    ProgramTopic
	}{
		{name: "AI by russian name", program: "Магистратура 'Искусственный интеллект'", want: TopicAI},
		{name: "AI by latin token", program: "Master AI", want: TopicAI},
		{name: "product wins when both tokens present", program: "AI Product Management", want: TopicProduct},
		{name: "product by russian name", program: "Управление продуктами", want: TopicProduct},
		{name: "unknown", program: "Биоинформатика", want: TopicUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopicOf(tt.program))
		})
	}
}

func TestVerdictTableCoversEveryArchetype(t *testing.T) {
	archetypes := []model.Archetype{
		model.ArchetypePythonDev,
		model.ArchetypeJavaDev,
		model.ArchetypeTechDev,
		model.ArchetypeMath,
		model.ArchetypeBusiness,
		model.ArchetypeBeginner,
	}

	for _, topic := range []string{"Искусственный интеллект", "AI Product Management"} {
		for _, a := range archetypes {
			v, ok := VerdictFor(topic, a)
			require.True(t, ok, "topic %q archetype %q", topic, a)
			assert.NotEmpty(t, v.Emoji)
			assert.NotEmpty(t, v.Text)
		}
	}
}

func TestVerdictForUnknownTopic(t *testing.T) {
	_, ok := VerdictFor("Биоинформатика", model.ArchetypePythonDev)
	assert.False(t, ok)
}

func TestVerdictBestChoices(t *testing.T) {
	v, ok := VerdictFor("Искусственный интеллект", model.ArchetypePythonDev)
	require.True(t, ok)
	assert.Equal(t, "🔥", v.Emoji)

	v, ok = VerdictFor("AI Product Management", model.ArchetypeBusiness)
	require.True(t, ok)
	assert.Equal(t, "🔥", v.Emoji)

	v, ok = VerdictFor("Искусственный интеллект", model.ArchetypeBusiness)
	require.True(t, ok)
	assert.Equal(t, "💡", v.Emoji)
}

func TestSkillsTableIntegrity(t *testing.T) {
	for tag, entry := range Skills() {
		assert.NotEmpty(t, entry.Keywords, "skill %q has no keywords", tag)
		assert.Greater(t, entry.Weight, 0.0, "skill %q has no weight", tag)
	}
}

func TestAssignmentRulesHaveDistinctPriorities(t *testing.T) {
	seen := make(map[int]string)
	for _, rule := range AssignmentRules() {
		prev, dup := seen[rule.Priority]
		require.False(t, dup, "priority %d used by %q and %q", rule.Priority, prev, rule.Cluster)
		seen[rule.Priority] = rule.Cluster
		assert.NotEmpty(t, rule.Keywords)
	}
}

func TestClustersMatchAssignmentTargets(t *testing.T) {
	clusters := Clusters()
	assert.Len(t, clusters, 8)

	for _, rule := range AssignmentRules() {
		if rule.Cluster == "" {
			continue
		}
		_, ok := clusters[rule.Cluster]
		assert.True(t, ok, "rule targets unknown cluster %q", rule.Cluster)
	}
}
