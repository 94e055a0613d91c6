package vault_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	objects map[string][]byte
	putErr  error
	expires time.Duration
}

func (m *memoryStore) Put(_ context.Context, key string, body []byte, _ string) error {
	if m.putErr != nil {
		return m.putErr
	}
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[key] = body
	return nil
}

func (m *memoryStore) PresignGet(_ context.Context, key string, expires time.Duration) (string, error) {
	m.expires = expires
	return fmt.Sprintf("https://bucket.example/%s?sig=1", key), nil
}

func TestExporter_Export(t *testing.T) {
	e := newEnv(t, vault.Passthrough{})
	ctx := context.Background()
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")

	_, err := e.passwords.Create(ctx, alice, vault.CreatePasswordInput{Title: "Gmail", Username: "a", Secret: "eA=="})
	require.NoError(t, err)
	_, err = e.passwords.Create(ctx, bob, vault.CreatePasswordInput{Title: "Bob's", Username: "b", Secret: "eQ=="})
	require.NoError(t, err)

	store := &memoryStore{}
	res, err := vault.NewExporter(e.passwords, store).Export(ctx, alice)
	require.NoError(t, err)

	assert.Equal(t, 900, res.ExpiresIn)
	assert.Equal(t, 15*time.Minute, store.expires)
	require.Len(t, store.objects, 1)

	for key, body := range store.objects {
		assert.True(t, strings.HasPrefix(key, "exports/"+alice.String()+"/"))
		assert.True(t, strings.HasSuffix(key, ".json"))
		assert.Contains(t, res.URL, key)

		var doc struct {
			Entries []struct {
				Title  string `json:"title"`
				Secret string `json:"secret"`
			} `json:"entries"`
		}
		require.NoError(t, json.Unmarshal(body, &doc))
		require.Len(t, doc.Entries, 1)
		assert.Equal(t, "Gmail", doc.Entries[0].Title)
		assert.Equal(t, "eA==", doc.Entries[0].Secret)
	}
}

func TestExporter_StoreFailure(t *testing.T) {
	e := newEnv(t, vault.Passthrough{})
	alice := e.user(t, "alice")

	_, err := vault.NewExporter(e.passwords, &memoryStore{putErr: errors.New("bucket gone")}).Export(context.Background(), alice)
	assert.ErrorIs(t, err, apperr.ErrInternal)
}
