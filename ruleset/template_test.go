package ruleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/namekit/grammar"
)

func TestTokenConfigInstance(t *testing.T) {
	tests := []struct {
		name   string
		config TokenConfig
		want   grammar.Instance
	}{
		{
			name:   "int value sets digits",
			config: TokenConfig{Name: "shotNumber", Value: 4, Separator: "_"},
			want:   grammar.Instance{Kind: "shotNumber", Digits: 4, Separator: "_"},
		},
		{
			name:   "json number sets digits",
			config: TokenConfig{Name: "version", Value: float64(3)},
			want:   grammar.Instance{Kind: "version", Digits: 3},
		},
		{
			name:   "string value selects option",
			config: TokenConfig{Name: "pixelMapping", Value: "LL180"},
			want:   grammar.Instance{Kind: "pixelMapping", Value: "LL180"},
		},
		{
			name:   "none marks optional",
			config: TokenConfig{Name: "pixelMapping", Value: "none"},
			want:   grammar.Instance{Kind: "pixelMapping", Optional: true},
		},
		{
			name:   "list selects subset",
			config: TokenConfig{Name: "extension", Value: []any{"exr", "mov"}},
			want:   grammar.Instance{Kind: "extension", Values: []string{"exr", "mov"}},
		},
		{
			name:   "string list selects subset",
			config: TokenConfig{Name: "extension", Value: []string{"exr"}},
			want:   grammar.Instance{Kind: "extension", Values: []string{"exr"}},
		},
		{
			name:   "bounds map to range",
			config: TokenConfig{Name: "sequence", MinValue: 3, MaxValue: 4},
			want:   grammar.Instance{Kind: "sequence", MinLen: 3, MaxLen: 4},
		},
		{
			name:   "literal entry",
			config: TokenConfig{Literal: "plate", Separator: "."},
			want:   grammar.Instance{Literal: "plate", Separator: "."},
		},
		{
			name:   "adornments carry over",
			config: TokenConfig{Name: "description", Prefix: "[", Suffix: "]", Optional: true},
			want:   grammar.Instance{Kind: "description", Prefix: "[", Suffix: "]", Optional: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.instance())
		})
	}
}

func TestBuildTemplate(t *testing.T) {
	t.Run("compilable descriptors", func(t *testing.T) {
		tmpl, err := BuildTemplate([]TokenConfig{
			{Name: "sequence", MinValue: 4, MaxValue: 4},
			{Name: "shotNumber", Value: 4, Separator: "_"},
			{Name: "version", Value: 3, Separator: "."},
			{Name: "extension", Value: []any{"exr", "mov"}},
		})
		require.NoError(t, err)
		require.Len(t, tmpl.Instances, 4)

		compiled, err := tmpl.Compile()
		require.NoError(t, err)
		assert.True(t, compiled.Match("ABCD0123_v001.exr"))
	})

	t.Run("bad descriptor surfaces compile error", func(t *testing.T) {
		_, err := BuildTemplate([]TokenConfig{
			{Name: "bogus"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, grammar.ErrUnknownKind)

		var cerr *grammar.CompileError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 0, cerr.Index)
	})

	t.Run("empty descriptor list", func(t *testing.T) {
		_, err := BuildTemplate(nil)
		assert.ErrorIs(t, err, grammar.ErrEmptyTemplate)
	})
}
