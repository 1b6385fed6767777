package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetResolvedStatusRequest_Resolved(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    bool
		wantErr bool
	}{
		{name: "true token", token: `true`, want: true},
		{name: "false token", token: `false`, want: false},
		{name: "surrounding whitespace", token: " true\n", want: true},
		{name: "null is an error, not false", token: `null`, wantErr: true},
		{name: "quoted boolean", token: `"true"`, wantErr: true},
		{name: "number", token: `1`, wantErr: true},
		{name: "absent", token: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := SetResolvedStatusRequest{ID: "r-1", ResolvedStatus: json.RawMessage(tt.token)}

			got, err := request.Resolved()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
