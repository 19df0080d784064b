package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose(t *testing.T) {
	tmpl := shotTemplate()

	t.Run("conforming name", func(t *testing.T) {
		assert.Empty(t, tmpl.Diagnose("ABCD0123_v001.exr"))
	})

	t.Run("short shot number", func(t *testing.T) {
		d := tmpl.Diagnose("ABCD123_v001.exr")
		require.Len(t, d, 1)
		assert.Equal(t, `<shotNumber>: found "123", expected 4 digits`, d[0])
	})

	t.Run("underpadded version", func(t *testing.T) {
		d := tmpl.Diagnose("ABCD0123_v01.exr")
		require.Len(t, d, 1)
		assert.Equal(t, `<version>: found "v01", expected v followed by 3 digits (e.g. v001)`, d[0])
	})

	t.Run("wrong extension", func(t *testing.T) {
		d := tmpl.Diagnose("ABCD0123_v001.avi")
		require.Len(t, d, 1)
		assert.Equal(t, `<extension>: found "avi", expected one of [exr, mov]`, d[0])
	})

	t.Run("empty filename", func(t *testing.T) {
		assert.Equal(t, Diagnosis{"empty filename"}, tmpl.Diagnose(""))
	})

	t.Run("no template", func(t *testing.T) {
		var empty *Template
		assert.Equal(t, Diagnosis{"no template configured"}, empty.Diagnose("ABCD0123_v001.exr"))
		assert.Equal(t, Diagnosis{"no template configured"}, (&Template{}).Diagnose("ABCD0123_v001.exr"))
	})

	t.Run("pattern error", func(t *testing.T) {
		bad := &Template{Instances: []Instance{
			{Kind: "bogus"},
		}}
		d := bad.Diagnose("whatever")
		require.Len(t, d, 1)
		assert.Contains(t, d[0], "pattern error in <bogus>")
	})
}

func TestDiagnoseMissingSeparator(t *testing.T) {
	tmpl := &Template{Instances: []Instance{
		{Kind: "sequence", MinLen: 4, MaxLen: 4, Separator: "_"},
		{Kind: "shotNumber", Digits: 4},
	}}

	d := tmpl.Diagnose("ABCD0123")
	require.Len(t, d, 2)
	assert.Equal(t, `<sequence>: found "ABCD0123", expected exactly 4 letters`, d[0])
	assert.Equal(t, `missing separator "_" between <sequence> and <shotNumber>`, d[1])
}

func TestDiagnoseOptional(t *testing.T) {
	tmpl := &Template{Instances: []Instance{
		{Kind: "sequence", MinLen: 4, MaxLen: 4, Separator: "_"},
		{Kind: "pixelMapping", Value: "LL180", Optional: true, Separator: "_"},
		{Kind: "resolution"},
	}}

	t.Run("present", func(t *testing.T) {
		assert.Empty(t, tmpl.Diagnose("AAAA_LL180_4k"))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Empty(t, tmpl.Diagnose("AAAA_4k"))
	})

	t.Run("malformed skips to next token", func(t *testing.T) {
		d := tmpl.Diagnose("AAAA_LL999_4k")
		require.Len(t, d, 1)
		assert.Contains(t, d[0], "<resolution>")
	})
}

// Adjacent tokens whose alphabets overlap across an empty separator need the
// composite's backtracking: the greedy walk alone would let the first token
// swallow the whole name.
func TestDiagnoseGreedyOverlap(t *testing.T) {
	tmpl := &Template{Instances: []Instance{
		{Kind: "description"},
		{Kind: "resolution"},
	}}

	t.Run("conforming", func(t *testing.T) {
		assert.Empty(t, tmpl.Diagnose("comp4k"))
		assert.Empty(t, tmpl.Diagnose("plate-a12K"))
	})

	t.Run("resolution absent", func(t *testing.T) {
		d := tmpl.Diagnose("comp")
		require.NotEmpty(t, d)
		assert.Contains(t, d[0], "<resolution>")
	})
}

func TestDiagnoseAllOptionalEmpty(t *testing.T) {
	tmpl := &Template{Instances: []Instance{
		{Kind: "pixelMapping", Value: "LL180", Optional: true},
	}}

	assert.Empty(t, tmpl.Diagnose(""))
	assert.Empty(t, tmpl.Diagnose("LL180"))

	d := tmpl.Diagnose("LL999")
	require.NotEmpty(t, d)
}

func TestDiagnoseTrailingContent(t *testing.T) {
	tmpl := &Template{Instances: []Instance{
		{Kind: "sequence", MinLen: 4, MaxLen: 4},
	}}

	t.Run("plain", func(t *testing.T) {
		d := tmpl.Diagnose("AAAA0123")
		require.Len(t, d, 1)
		assert.Equal(t, `unexpected trailing content "0123"`, d[0])
	})

	t.Run("misplaced extension", func(t *testing.T) {
		d := tmpl.Diagnose("AAAA.exr")
		require.Len(t, d, 1)
		assert.Equal(t, `unexpected trailing content ".exr": looks like a misplaced extension`, d[0])
	})
}

// The fast path and the token walk must agree on every name: a match means an
// empty diagnosis and a reject means a non-empty one.
func TestMatchDiagnoseConsistency(t *testing.T) {
	templates := map[string]*Template{
		"shot": shotTemplate(),
		"optional": {Instances: []Instance{
			{Kind: "sequence", MinLen: 4, MaxLen: 4, Separator: "_"},
			{Kind: "pixelMapping", Value: "LL180", Optional: true, Separator: "_"},
			{Kind: "resolution"},
		}},
		"literal": {Instances: []Instance{
			{Literal: "plate", Separator: "."},
			{Kind: "extension", Values: []string{"exr"}},
		}},
		"empty separator overlap": {Instances: []Instance{
			{Kind: "description"},
			{Kind: "resolution"},
		}},
		"all optional": {Instances: []Instance{
			{Kind: "pixelMapping", Value: "LL180", Optional: true},
		}},
	}

	inputs := []string{
		"ABCD0123_v001.exr",
		"ABCD0123_v001.mov",
		"ABCD123_v001.exr",
		"ABCD0123_v01.exr",
		"ABCD0123v001.exr",
		"abcd0123_v001.EXR",
		"AAAA_LL180_4k",
		"AAAA_4k",
		"AAAA_LL999_4k",
		"plate.exr",
		"plate.mov",
		"comp.exr",
		"comp4k",
		"comp",
		"4k",
		"LL180",
		"LL999",
		"",
	}

	for name, tmpl := range templates {
		t.Run(name, func(t *testing.T) {
			compiled, err := tmpl.Compile()
			require.NoError(t, err)

			for _, input := range inputs {
				matched := compiled.Match(input)
				diagnosed := tmpl.Diagnose(input)
				if matched {
					assert.Empty(t, diagnosed, "input %q matched but diagnosis is %v", input, diagnosed)
				} else {
					assert.NotEmpty(t, diagnosed, "input %q rejected but diagnosis is empty", input)
				}
			}
		})
	}
}
