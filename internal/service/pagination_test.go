package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePageSkip(t *testing.T) {
	tests := []struct {
		name     string
		page     int64
		maxSkip  int64
		wantSkip uint64
		wantErr  error
	}{
		{name: "zero page is first page", page: 0, maxSkip: 100_000, wantSkip: 0},
		{name: "negative page is first page", page: -3, maxSkip: 100_000, wantSkip: 0},
		{name: "first page", page: 1, maxSkip: 100_000, wantSkip: 0},
		{name: "second page", page: 2, maxSkip: 100_000, wantSkip: 10},
		{name: "skip at the ceiling", page: 10_001, maxSkip: 100_000, wantSkip: 100_000},
		{name: "skip beyond the ceiling", page: 10_002, maxSkip: 100_000, wantErr: ErrPageTooLarge},
		{name: "absurd page does not overflow", page: math.MaxInt64, maxSkip: 100_000, wantErr: ErrPageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, err := resolvePageSkip(tt.page, tt.maxSkip)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, skip)
		})
	}
}
