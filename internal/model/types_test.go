package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadedFileIsJSON(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"Application/JSON", true},
		{"text/plain", false},
		{"text/json", false},
		{"", false},
		{"application/octet-stream", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			f := &UploadedFile{Name: "x", ContentType: tt.contentType}
			assert.Equal(t, tt.want, f.IsJSON())
		})
	}
}

func TestFileFromPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("json extension declares json", func(t *testing.T) {
		path := filepath.Join(dir, "export.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

		f, err := FileFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, "export.json", f.Name)
		assert.True(t, f.IsJSON())
		assert.Equal(t, []byte(`{}`), f.Content)
	})

	t.Run("other extension is not json", func(t *testing.T) {
		path := filepath.Join(dir, "export.txt")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

		f, err := FileFromPath(path)
		require.NoError(t, err)
		assert.False(t, f.IsJSON())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FileFromPath(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestDescribe(t *testing.T) {
	c, err := NewCollection([]byte(`[
		{"transportUrl":"https://v3-cinemeta.strem.io/manifest.json","manifest":{"id":"com.linvo.cinemeta","name":"Cinemeta","version":"3.0.13"},"flags":{"official":true,"protected":true}},
		"not an object"
	]`))
	require.NoError(t, err)

	d := c.Describe()
	require.Len(t, d, 2)
	assert.Equal(t, "Cinemeta", d[0].Manifest.Name)
	assert.Equal(t, "com.linvo.cinemeta", d[0].Manifest.ID)
	assert.True(t, d[0].Flags.Protected)
	assert.Equal(t, "", d[1].Manifest.Name)
}

func TestStatusMessage(t *testing.T) {
	assert.False(t, Success("ok").IsError())
	assert.True(t, Failure("bad").IsError())
}
