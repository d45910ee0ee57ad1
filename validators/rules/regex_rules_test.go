package rules

import (
	"testing"

	"github.com/michaelolof/vregistry/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    func(any) bool
		valid   []any
		invalid []any
	}{
		{
			name:    "HexValidator",
			rule:    HexValidator{}.Test,
			valid:   []any{"AbC123", "7dddf7e", "0", "ffff"},
			invalid: []any{"", "zz", "0x1f", " ab", 123, nil, []byte("ab")},
		},
		{
			name:    "IsHexLoose",
			rule:    IsHexLoose,
			valid:   []any{"", "AbC123", "7dddf7e"},
			invalid: []any{"zz", "0x1f", 123, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, val := range tt.valid {
				assert.True(t, tt.rule(val), "%s(%v) expected valid", tt.name, val)
			}
			for _, val := range tt.invalid {
				assert.False(t, tt.rule(val), "%s(%v) expected invalid", tt.name, val)
			}
		})
	}
}

func TestNewPattern(t *testing.T) {
	v, err := NewPattern("^[a-z]+$")
	require.NoError(t, err)

	p, ok := v.(validators.Validator)
	require.True(t, ok)
	assert.True(t, p.Test("abc"))
	assert.False(t, p.Test("abc1"))
	assert.False(t, p.Test(42))
	assert.Equal(t, "^[a-z]+$", v.(Pattern).String())

	_, err = NewPattern()
	assert.Error(t, err)
	_, err = NewPattern(12)
	assert.Error(t, err)
	_, err = NewPattern("[")
	assert.Error(t, err)
}
