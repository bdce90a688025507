package webhooks

import (
	"io"
	"testing"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewStore(storage.NewMemStore(), log)
}

func TestCRUDRoundTrip(t *testing.T) {
	store := newTestStore()

	hook := models.WebhookConfig{ID: "webhook_1", Name: "Main", URL: "https://hooks.example.com/scan"}
	require.NoError(t, store.Add(hook))

	got, ok := store.FindByID("webhook_1")
	require.True(t, ok)
	require.Equal(t, "Main", got.Name)

	hook.URL = "https://hooks.example.com/v2/scan"
	require.NoError(t, store.Update(hook))
	got, _ = store.FindByID("webhook_1")
	require.Equal(t, "https://hooks.example.com/v2/scan", got.URL)

	require.NoError(t, store.Delete("webhook_1"))
	_, ok = store.FindByID("webhook_1")
	require.False(t, ok)
	require.Empty(t, store.GetAll())
}

func TestHeadersParsesStringValues(t *testing.T) {
	hook := models.WebhookConfig{
		HeadersJSON: `{"Authorization":"Bearer abc","X-Source":"scanner"}`,
	}
	headers := Headers(hook)
	require.Equal(t, map[string]string{
		"Authorization": "Bearer abc",
		"X-Source":      "scanner",
	}, headers)
}

func TestHeadersSkipsNonStringValues(t *testing.T) {
	hook := models.WebhookConfig{
		HeadersJSON: `{"X-Retry":3,"X-Flag":true,"X-Ok":"yes"}`,
	}
	headers := Headers(hook)
	require.Equal(t, map[string]string{"X-Ok": "yes"}, headers)
}

func TestHeadersEmptyOrMalformed(t *testing.T) {
	require.Empty(t, Headers(models.WebhookConfig{}))
	require.Empty(t, Headers(models.WebhookConfig{HeadersJSON: "not json"}))
	require.Empty(t, Headers(models.WebhookConfig{HeadersJSON: `["a","b"]`}))
}
