package repositories_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/rohits-web03/passvault/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestR2Endpoint(t *testing.T) {
	assert.Equal(t, "https://acc123.r2.cloudflarestorage.com", repositories.R2Endpoint("acc123"))
}

func TestObjectStore_PresignGet(t *testing.T) {
	store := repositories.NewObjectStore("https://acc123.r2.cloudflarestorage.com", "key", "secret", "vault", "auto")

	raw, err := store.PresignGet(context.Background(), "exports/u1/1700000000.json", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "acc123.r2.cloudflarestorage.com", u.Host)
	assert.Equal(t, "/vault/exports/u1/1700000000.json", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestObjectStore_Put(t *testing.T) {
	var (
		mu       sync.Mutex
		gotPath  string
		gotBody  string
		gotCType string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotPath = r.URL.Path
		gotBody = string(body)
		gotCType = r.Header.Get("Content-Type")
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	store := repositories.NewObjectStore(srv.URL, "key", "secret", "vault", "auto")
	err := store.Put(context.Background(), "exports/u1/1.json", []byte(`{"ok":true}`), "application/json")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/vault/exports/u1/1.json", gotPath)
	assert.Contains(t, gotBody, `{"ok":true}`)
	assert.Equal(t, "application/json", gotCType)
}
