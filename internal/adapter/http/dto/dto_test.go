package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name     string
		schedule *string
		want     *time.Time
		wantErr  string
	}{
		{"nil means immediate", nil, nil, ""},
		{"empty means immediate", strPtr(""), nil, ""},
		{"space layout", strPtr("2026-12-25 10:00:00"), timePtr(2026, 12, 25, 10), ""},
		{"rfc3339 layout", strPtr("2026-12-25T10:00:00Z"), timePtr(2026, 12, 25, 10), ""},
		{"garbage", strPtr("next tuesday"), nil, "invalid schedule format"},
		{"past timestamp", strPtr("2020-01-01 10:00:00"), nil, "must be in the future"},
		{"exactly now", strPtr("2026-09-01 12:00:00"), nil, "must be in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := WithdrawRequest{Schedule: tt.schedule}
			got, err := req.ParseSchedule(now)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}

func timePtr(year int, month time.Month, day, hour int) *time.Time {
	ts := time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	return &ts
}

func TestDecimalAmount(t *testing.T) {
	req := WithdrawRequest{Amount: 60.5}
	assert.Equal(t, "60.50", req.DecimalAmount().StringFixed(2))
}
