package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []bool
		wantErr string
	}{
		{"none", []bool{false, false}, "no source"},
		{"one", []bool{false, true}, ""},
		{"two", []bool{true, true}, "too many"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("no source", "too many", tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidateInputSource(t *testing.T) {
	assert.EqualError(t, ValidateInputSource("need input"), "need input")
	assert.EqualError(t, ValidateInputSource("need input", 0, 0), "need input")
	assert.NoError(t, ValidateInputSource("need input", 0, 2))
}
