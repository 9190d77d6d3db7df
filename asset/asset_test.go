package asset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetManager(t *testing.T) {
	am := NewManager()

	t.Run("GetIcon", func(t *testing.T) {
		icon, err := am.GetIcon("collager.svg")
		assert.NoError(t, err)
		assert.NotNil(t, icon)
		assert.Equal(t, "collager.svg", icon.Name())
		assert.NotEmpty(t, icon.Content())

		_, err = am.GetIcon("non_existent.png")
		assert.Error(t, err)

		_, err = am.GetIcon("")
		assert.Error(t, err)
	})

	t.Run("GetText", func(t *testing.T) {
		text, err := am.GetText("about.txt")
		assert.NoError(t, err)
		assert.NotEmpty(t, text)

		_, err = am.GetText("non_existent.txt")
		assert.Error(t, err)
	})

	t.Run("LoadTranslations", func(t *testing.T) {
		assert.NoError(t, am.LoadTranslations())
	})
}

// Every locale must carry the same keys as the English base file.
func TestTranslationsComplete(t *testing.T) {
	load := func(name string) map[string]string {
		data, err := assets.ReadFile(translationsDir + "/" + name)
		require.NoError(t, err)
		m := map[string]string{}
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	base := load("en.json")
	entries, err := assets.ReadDir(translationsDir)
	require.NoError(t, err)

	for _, e := range entries {
		if e.Name() == "en.json" {
			continue
		}
		t.Run(e.Name(), func(t *testing.T) {
			other := load(e.Name())
			for key := range base {
				assert.Contains(t, other, key)
			}
			assert.Len(t, other, len(base))
		})
	}
}
