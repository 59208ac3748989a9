package experience_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/experience"
	"github.com/taibuivan/folio/internal/platform/docstore"
	"github.com/taibuivan/folio/pkg/pointer"
)

func newService(t *testing.T) *experience.Service {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return experience.NewService(experience.NewRepository(docstore.NewMemoryStore(), logger, nil), logger)
}

/*
TestService_CurrentRoleRoundTrip verifies that a role can be closed and then
marked current again through patches.
*/
func TestService_CurrentRoleRoundTrip(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	created, err := service.CreateExperience(ctx, experience.Experience{
		Company: "Folio Labs", Position: "Engineer", StartDate: "2023-04",
	})
	require.NoError(t, err)
	assert.True(t, created.Current())
	assert.Equal(t, []string{}, created.Achievements)

	closed, err := service.UpdateExperience(ctx, created.ID, experience.Patch{EndDate: pointer.To("2025-01")})
	require.NoError(t, err)
	require.NotNil(t, closed.EndDate)
	assert.Equal(t, "2025-01", *closed.EndDate)

	reopened, err := service.UpdateExperience(ctx, created.ID, experience.Patch{Current: true})
	require.NoError(t, err)
	assert.True(t, reopened.Current())
	assert.Equal(t, "Folio Labs", reopened.Company)
}

/*
TestService_DateValidation covers date layouts and range ordering.
*/
func TestService_DateValidation(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     *string
		wantErr bool
	}{
		{"month precision", "2022-01", pointer.To("2023-06"), false},
		{"mixed precision same month", "2022-01-15", pointer.To("2022-01"), false},
		{"present", "2022-01-15", nil, false},
		{"end before start", "2022-05", pointer.To("2022-04-30"), true},
		{"bad layout", "January 2022", nil, true},
		{"missing start", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(t).CreateExperience(context.Background(), experience.Experience{
				Company: "c", Position: "p", StartDate: tt.start, EndDate: tt.end,
			})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestService_ListByDescendingOrder checks the public timeline ordering.
*/
func TestService_ListByDescendingOrder(t *testing.T) {
	ctx := context.Background()
	service := newService(t)

	for _, company := range []string{"first", "third", "second"} {
		order := map[string]int{"first": 1, "second": 2, "third": 3}[company]
		_, err := service.CreateExperience(ctx, experience.Experience{
			Company: company, Position: "p", StartDate: "2020-01", Order: order,
		})
		require.NoError(t, err)
	}

	entries, err := service.ListExperience(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Company)
	assert.Equal(t, "second", entries[1].Company)
	assert.Equal(t, "first", entries[2].Company)
}
