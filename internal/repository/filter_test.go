package repository

import (
	"testing"

	"cause-platform/internal/models"

	"github.com/google/uuid"
)

func TestEffectiveStatus(t *testing.T) {
	owner := uuid.New()

	cases := []struct {
		name   string
		filter CauseFilter
		want   models.CauseStatus
	}{
		{"public default restricts to approved", CauseFilter{}, models.CauseStatusApproved},
		{"explicit status wins", CauseFilter{Status: models.CauseStatusRejected}, models.CauseStatusRejected},
		{"owner query applies no status", CauseFilter{UserID: &owner}, ""},
		{"owner query with explicit status", CauseFilter{UserID: &owner, Status: models.CauseStatusPending}, models.CauseStatusPending},
		{"category does not affect visibility", CauseFilter{Category: "health"}, models.CauseStatusApproved},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.EffectiveStatus(); got != tc.want {
				t.Errorf("EffectiveStatus() = %q, want %q", got, tc.want)
			}
		})
	}
}
