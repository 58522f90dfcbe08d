package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalCredits(t *testing.T) {
	p := Program{
		Courses: []Course{
			{Name: "a", Credits: 3},
			{Name: "b", Credits: 6},
			{Name: "c", Credits: 12},
		},
	}
	assert.Equal(t, 21, p.TotalCredits())

	empty := Program{}
	assert.Equal(t, 0, empty.TotalCredits())
}

func TestProfileSkillHelpers(t *testing.T) {
	p := BackgroundProfile{
		ProgrammingSkills: []string{"python", "java"},
		MathSkills:        []string{"математика"},
		BusinessSkills:    []string{"менеджмент"},
	}

	assert.True(t, p.HasProgramming("python"))
	assert.False(t, p.HasProgramming("c++"))
	assert.True(t, p.HasMath("математика"))
	assert.False(t, p.HasMath("статистика"))
	assert.True(t, p.HasBusiness("менеджмент"))
	assert.False(t, p.HasBusiness("маркетинг"))
}
