package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantPage int64
		wantErr  error
	}{
		{name: "absent means first page", raw: "", wantPage: 0},
		{name: "explicit page", raw: "3", wantPage: 3},
		{name: "zero", raw: "0", wantPage: 0},
		{name: "negative passes through", raw: "-2", wantPage: -2},
		{name: "garbage means first page", raw: "banana", wantPage: 0},
		{name: "float means first page", raw: "1.5", wantPage: 0},
		{name: "overflow is an error", raw: "99999999999999999999999999", wantErr: ErrPageOutOfRange},
		{name: "underflow is an error", raw: "-99999999999999999999999999", wantErr: ErrPageOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ParsePage(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantAscending bool
		wantErr       error
	}{
		{name: "absent means descending", raw: "", wantAscending: false},
		{name: "true", raw: "true", wantAscending: true},
		{name: "false", raw: "false", wantAscending: false},
		{name: "True is rejected", raw: "True", wantErr: ErrInvalidSortOrder},
		{name: "one is rejected", raw: "1", wantErr: ErrInvalidSortOrder},
		{name: "asc is rejected", raw: "asc", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ascending, err := ParseSortOrder(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAscending, ascending)
		})
	}
}

func TestParseResolvedFilter(t *testing.T) {
	trueVal, falseVal := true, false

	tests := []struct {
		name    string
		raw     string
		want    *bool
		wantErr error
	}{
		{name: "absent means no filter", raw: "", want: nil},
		{name: "true", raw: "true", want: &trueVal},
		{name: "false", raw: "false", want: &falseVal},
		{name: "yes is rejected", raw: "yes", wantErr: ErrInvalidResolvedFilter},
		{name: "zero is rejected", raw: "0", wantErr: ErrInvalidResolvedFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ParseResolvedFilter(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, resolved)
		})
	}
}
