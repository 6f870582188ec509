package drive

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"bulk-trafficker/internal/core/domain"
)

func newTestStore(t *testing.T, h http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	s, err := New(context.Background(),
		option.WithEndpoint(srv.URL+"/drive/v3/"),
		option.WithHTTPClient(srv.Client()),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return s
}

func TestOpenDownloadsMedia(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drive/v3/files/file-1", r.URL.Path)
		assert.Equal(t, "media", r.URL.Query().Get("alt"))
		_, _ = w.Write([]byte("PNGDATA"))
	})

	body, err := s.Open(context.Background(), "file-1")
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(data))
}

func TestListFollowsPages(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "'folder-1' in parents and trashed = false", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			_, _ = w.Write([]byte(`{"files":[{"id":"a","name":"a.png"}],"nextPageToken":"n"}`))
			return
		}
		_, _ = w.Write([]byte(`{"files":[{"id":"b","name":"b.png"}]}`))
	})

	files, err := s.List(context.Background(), "folder-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.File{{ID: "a", Name: "a.png"}, {ID: "b", Name: "b.png"}}, files)
}

func TestOpenMissingFile(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"code":404,"message":"File not found"}}`, http.StatusNotFound)
	})

	_, err := s.Open(context.Background(), "gone")
	assert.Error(t, err)
}
