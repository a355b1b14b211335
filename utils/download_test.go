package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")

func TestUtils_ShouldDownloadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngHeader)
	}))
	defer srv.Close()

	f, err := DownloadImage(srv.URL + "/layer.png")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	defer f.Close()

	assert.FileExists(t, f.Name())
}

func TestUtils_ShouldRejectNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text body"))
	}))
	defer srv.Close()

	_, err := DownloadImage(srv.URL)
	assert.Error(t, err)
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://github.com/esimov/pixcomp/"))
	assert.False(t, IsValidUrl("testdata/layer.png"))
	assert.False(t, IsValidUrl("-"))
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0644))

	ftype, err := DetectContentType(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ftype)
}
