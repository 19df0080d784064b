package ruleset

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStringListYAML(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		var l StringList
		require.NoError(t, yaml.Unmarshal([]byte(`DWAA`), &l))
		assert.Equal(t, StringList{"DWAA"}, l)
	})

	t.Run("sequence", func(t *testing.T) {
		var l StringList
		require.NoError(t, yaml.Unmarshal([]byte(`[DWAA, "Zip (1 scanline)"]`), &l))
		assert.Equal(t, StringList{"DWAA", "Zip (1 scanline)"}, l)
	})

	t.Run("mapping rejected", func(t *testing.T) {
		var l StringList
		assert.Error(t, yaml.Unmarshal([]byte(`{a: b}`), &l))
	})
}

func TestStringListJSON(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		var l StringList
		require.NoError(t, json.Unmarshal([]byte(`"DWAA"`), &l))
		assert.Equal(t, StringList{"DWAA"}, l)
	})

	t.Run("number scalar", func(t *testing.T) {
		var l StringList
		require.NoError(t, json.Unmarshal([]byte(`16`), &l))
		assert.Equal(t, StringList{"16"}, l)
	})

	t.Run("array", func(t *testing.T) {
		var l StringList
		require.NoError(t, json.Unmarshal([]byte(`["DWAA", "ZIP"]`), &l))
		assert.Equal(t, StringList{"DWAA", "ZIP"}, l)
	})

	t.Run("null", func(t *testing.T) {
		var l StringList
		require.NoError(t, json.Unmarshal([]byte(`null`), &l))
		assert.Nil(t, l)
	})
}

func TestStringListContains(t *testing.T) {
	l := StringList{"DWAA", "ZIP"}
	assert.True(t, l.Contains("ZIP"))
	assert.False(t, l.Contains("PIZ"))
	assert.False(t, StringList(nil).Contains("DWAA"))
}
