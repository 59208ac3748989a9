package skill_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/skill"
	"github.com/taibuivan/folio/internal/platform/docstore"
	"github.com/taibuivan/folio/pkg/slice"
)

func newService(t *testing.T) *skill.Service {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return skill.NewService(skill.NewRepository(docstore.NewMemoryStore(), logger, nil), logger)
}

/*
TestService_ListDescendingOrder checks the [3,1,2] -> [3,2,1] scenario.
*/
func TestService_ListDescendingOrder(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	for _, order := range []int{3, 1, 2} {
		_, err := service.CreateSkill(ctx, skill.Skill{Name: "s", Category: skill.CategoryBackend, Proficiency: 50, Order: order})
		require.NoError(t, err)
	}

	skills, err := service.ListByOrder(ctx, "-order")
	require.NoError(t, err)

	orders := slice.Map(skills, func(s skill.Skill) int { return s.Order })
	assert.Equal(t, []int{3, 2, 1}, orders)
}

/*
TestService_CreateValidation covers the category enum and proficiency range.
*/
func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   skill.Skill
		wantErr bool
	}{
		{"valid", skill.Skill{Name: "Go", Category: skill.CategoryBackend, Proficiency: 90}, false},
		{"proficiency bounds", skill.Skill{Name: "Go", Category: skill.CategoryBackend, Proficiency: 100}, false},
		{"unknown category", skill.Skill{Name: "Go", Category: "cooking", Proficiency: 10}, true},
		{"proficiency over 100", skill.Skill{Name: "Go", Category: skill.CategoryTools, Proficiency: 101}, true},
		{"missing name", skill.Skill{Category: skill.CategoryTools, Proficiency: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(t).CreateSkill(context.Background(), tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestGroupSkills verifies groups follow category order and skip empty categories.
*/
func TestGroupSkills(t *testing.T) {
	skills := []skill.Skill{
		{Name: "Docker", Category: skill.CategoryDevOps},
		{Name: "React", Category: skill.CategoryFrontend},
		{Name: "Go", Category: skill.CategoryBackend},
		{Name: "Vue", Category: skill.CategoryFrontend},
		{Name: "Legacy", Category: "mainframe"},
	}

	groups := skill.GroupSkills(skills)
	require.Len(t, groups, 4)

	assert.Equal(t, skill.CategoryFrontend, groups[0].Category)
	assert.Equal(t, "Frontend", groups[0].Label)
	assert.Equal(t, []string{"React", "Vue"}, slice.Map(groups[0].Skills, func(s skill.Skill) string { return s.Name }))

	assert.Equal(t, skill.CategoryBackend, groups[1].Category)
	assert.Equal(t, "DevOps", groups[2].Label)
	assert.Equal(t, skill.CategoryOther, groups[3].Category)
	assert.Equal(t, "Legacy", groups[3].Skills[0].Name)
}
