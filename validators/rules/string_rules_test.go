package rules

import (
	"strings"
	"testing"

	"github.com/michaelolof/vregistry/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharCount(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		wantErr bool
		valid   []any
		invalid []any
	}{
		{
			name:    "int limit",
			args:    []any{32},
			valid:   []any{"7dddf7e", "", strings.Repeat("a", 32)},
			invalid: []any{strings.Repeat("a", 33), 7, nil},
		},
		{
			name:    "string limit",
			args:    []any{"3"},
			valid:   []any{"abc"},
			invalid: []any{"abcd"},
		},
		{
			name:    "float limit",
			args:    []any{float64(2)},
			valid:   []any{"ab"},
			invalid: []any{"abc"},
		},
		{name: "missing limit", args: nil, wantErr: true},
		{name: "too many limits", args: []any{1, 2}, wantErr: true},
		{name: "fractional limit", args: []any{2.5}, wantErr: true},
		{name: "negative limit", args: []any{-1}, wantErr: true},
		{name: "non numeric limit", args: []any{"many"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewCharCount(tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			cc := v.(validators.Validator)
			for _, val := range tt.valid {
				assert.True(t, cc.Test(val), "expected %v to be valid", val)
			}
			for _, val := range tt.invalid {
				assert.False(t, cc.Test(val), "expected %v to be invalid", val)
			}
		})
	}
}

func TestUrn(t *testing.T) {
	u := Urn{}
	assert.True(t, u.Test("urn:isbn:0451450523"))
	assert.True(t, u.Test("urn:ietf:rfc:2648"))
	assert.False(t, u.Test("isbn:0451450523"))
	assert.False(t, u.Test(""))
	assert.False(t, u.Test(42))
}

func TestJson(t *testing.T) {
	j := Json{}
	assert.True(t, j.Test(`{"a":[1,2,3]}`))
	assert.True(t, j.Test([]byte(`"str"`)))
	assert.False(t, j.Test(`{"a":`))
	assert.False(t, j.Test(""))
	assert.False(t, j.Test(map[string]any{}))
}

func TestBuiltins(t *testing.T) {
	c := Builtins()
	assert.Equal(t, Namespace, c.Namespace())
	assert.Equal(t, []validators.TypeID{
		"rules.CharCount",
		"rules.HexValidator",
		"rules.Json",
		"rules.Pattern",
		"rules.Urn",
	}, c.IDs())

	// Each call hands out an independent catalog.
	require.NoError(t, c.Add("Extra", NewJson))
	_, ok := Builtins().Resolve("Extra")
	assert.False(t, ok)
}
