package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.json":
			_, _ = w.Write([]byte(`{"last_updated":"now"}`))
		case "/empty.json":
			_, _ = w.Write([]byte("  \n"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	data, err := New(srv.URL + "/data.json").Load(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"last_updated":"now"}`, string(data))

	_, err = New(srv.URL + "/missing.json").Load(context.Background())
	assert.ErrorIs(t, err, ErrLoad)

	_, err = New(srv.URL + "/empty.json").Load(context.Background())
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	data, err := New(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	_, err = New(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	assert.ErrorIs(t, err, ErrLoad)
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New("http://127.0.0.1:1/data.json").Load(ctx)
	assert.ErrorIs(t, err, ErrLoad)
}
