package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openabit/advisor/internal/knowledge"
	"github.com/openabit/advisor/internal/model"
)

func TestAssign(t *testing.T) {
	tests := []struct {
		name   string
		course string
		want   string
	}{
		{
			name:   "intro AI course",
			course: "Введение в искусственный интеллект",
			want:   knowledge.ClusterAICore,
		},
		{
			name:   "intro product course",
			course: "Введение в AI Product Management",
			want:   knowledge.ClusterAICore, // "ai" qualifier outranks "продукт"
		},
		{
			name:   "intro ML for products",
			course: "Основы машинного обучения для продуктов",
			want:   knowledge.ClusterProductManagement,
		},
		{
			name:   "intro analytics",
			course: "Основы анализа данных",
			want:   knowledge.ClusterDataAnalytics,
		},
		{
			name: "unqualified intro course stays unclustered",
			// Matches the intro keywords but none of the qualifiers, so
			// the barrier rule swallows it before the ML group can.
			course: "Основы машинного обучения",
			want:   "",
		},
		{
			name:   "machine learning",
			course: "Машинное обучение",
			want:   knowledge.ClusterMachineLearning,
		},
		{
			name:   "deep learning",
			course: "Глубокое обучение",
			want:   knowledge.ClusterDeepLearning,
		},
		{
			name:   "neural networks go to deep learning",
			course: "Нейронные сети и архитектуры",
			want:   knowledge.ClusterDeepLearning,
		},
		{
			name:   "computer vision",
			course: "Компьютерное зрение",
			want:   knowledge.ClusterComputerVision,
		},
		{
			name:   "business with AI qualifier",
			course: "AI в бизнесе",
			want:   knowledge.ClusterBusinessAI,
		},
		{
			name:   "plain business course",
			course: "Бизнес-модели для продуктов",
			want:   knowledge.ClusterProductManagement,
		},
		{
			name:   "analytics",
			course: "Анализ данных",
			want:   knowledge.ClusterDataAnalytics,
		},
		{
			name:   "no match",
			course: "Этика и право",
			want:   "",
		},
	}

	rules := sortedRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assign(model.Course{Name: tt.course}, rules)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignFirstMatchWins(t *testing.T) {
	// Contains both ML and business keywords; the ML rule has higher
	// priority and must win.
	course := model.Course{Name: "Машинное обучение для бизнеса"}
	got := Assign(course, sortedRules())
	assert.Equal(t, knowledge.ClusterMachineLearning, got)
}

func TestNewIndexFillsClusters(t *testing.T) {
	programs := []model.Program{
		{
			Name: "Тестовая программа",
			Courses: []model.Course{
				{Name: "Введение в искусственный интеллект"},
				{Name: "Машинное обучение"},
				{Name: "Глубокое обучение"},
				{Name: "Этика и право"},
			},
		},
	}

	ix := New(programs)

	require.True(t, ix.HasCourses(knowledge.ClusterAICore))
	require.True(t, ix.HasCourses(knowledge.ClusterMachineLearning))
	require.True(t, ix.HasCourses(knowledge.ClusterDeepLearning))
	assert.False(t, ix.HasCourses(knowledge.ClusterNLP))
	assert.False(t, ix.HasCourses("no_such_cluster"))

	ml, ok := ix.Cluster(knowledge.ClusterMachineLearning)
	require.True(t, ok)
	require.Len(t, ml.Courses, 1)
	assert.Equal(t, "Машинное обучение", ml.Courses[0].Name)
}

func TestIndexKeysAreStable(t *testing.T) {
	ix := New([]model.Program{{Name: "p"}})

	first := ix.Keys()
	assert.Len(t, first, 8)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ix.Keys())
	}
}

func TestEveryCourseLandsInAtMostOneCluster(t *testing.T) {
	courses := []model.Course{
		{Name: "Введение в искусственный интеллект"},
		{Name: "Машинное обучение"},
		{Name: "Обработка естественного языка"},
		{Name: "Компьютерное зрение"},
		{Name: "Анализ данных"},
		{Name: "AI в бизнесе"},
		{Name: "Проектная работа"},
	}

	ix := New([]model.Program{{Courses: courses}})

	total := 0
	for _, key := range ix.Keys() {
		c, ok := ix.Cluster(key)
		require.True(t, ok)
		total += len(c.Courses)
	}
	assert.LessOrEqual(t, total, len(courses))
}
