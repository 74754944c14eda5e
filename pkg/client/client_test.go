package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okEnvelope(t *testing.T, w http.ResponseWriter, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"status":  true,
		"message": "ok",
		"body":    body,
	})
	require.NoError(t, err)
}

func TestGetUsesCacheWithinTTL(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		okEnvelope(t, w, map[string]string{"id": "1"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.Get(ctx, "/api/equipment")
	require.NoError(t, err)
	_, err = c.Get(ctx, "/api/equipment")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "la seconde lecture doit venir du cache")
}

func TestGetRefetchesAfterTTL(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		okEnvelope(t, w, nil)
	}))
	defer srv.Close()

	c := New(srv.URL, WithCacheTTL(10*time.Millisecond))
	ctx := context.Background()

	_, err := c.Get(ctx, "/api/equipment")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = c.Get(ctx, "/api/equipment")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestCreateInvalidatesCollection(t *testing.T) {
	var gets int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			atomic.AddInt32(&gets, 1)
		}
		okEnvelope(t, w, nil)
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.Get(ctx, "/api/tickets")
	require.NoError(t, err)
	_, err = c.Get(ctx, "/api/tickets/42")
	require.NoError(t, err)

	_, err = c.Create(ctx, "/api/tickets", map[string]string{"title": "écran cassé"})
	require.NoError(t, err)

	// La collection et l'élément doivent être relus après la mutation.
	_, err = c.Get(ctx, "/api/tickets")
	require.NoError(t, err)
	_, err = c.Get(ctx, "/api/tickets/42")
	require.NoError(t, err)

	assert.Equal(t, int32(4), atomic.LoadInt32(&gets))
}

func TestSessionCollapseOn401FromSessionPath(t *testing.T) {
	loggedIn := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			okEnvelope(t, w, map[string]string{"id": "u1", "email": "a@b.fr"})
		case "/api/auth/user":
			if !loggedIn {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			okEnvelope(t, w, map[string]string{"id": "u1", "email": "a@b.fr"})
		default:
			okEnvelope(t, w, nil)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, "a@b.fr", "secret123")
	require.NoError(t, err)
	require.NotNil(t, c.User())

	loggedIn = false
	user, err := c.RefreshUser(ctx)
	require.NoError(t, err, "un 401 du point de session n'est pas une erreur")
	assert.Nil(t, user)
	assert.Nil(t, c.User(), "la session doit s'effondrer")
}

func Test401ElsewhereDoesNotCollapseSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			okEnvelope(t, w, map[string]string{"id": "u1"})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "non authentifié"})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, "a@b.fr", "secret123")
	require.NoError(t, err)

	_, err = c.Get(ctx, "/api/equipment")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.NotNil(t, c.User(), "un 401 hors session est un simple échec de chargement")
}

func TestReadRetriesOnceOnServerError(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		okEnvelope(t, w, nil)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Get(context.Background(), "/api/licenses")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestReadDoesNotRetryClientError(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Get(context.Background(), "/api/licenses/absent")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestWriteNeverRetries(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Create(context.Background(), "/api/tickets", map[string]string{"title": "x"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestPollRunsAndStops(t *testing.T) {
	var runs int32
	stop := Poll(10*time.Millisecond, func() {
		atomic.AddInt32(&runs, 1)
	})

	time.Sleep(35 * time.Millisecond)
	stop()
	after := atomic.LoadInt32(&runs)
	require.GreaterOrEqual(t, after, int32(2), "exécution immédiate puis périodique")

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&runs), "plus aucun tick après l'arrêt")
	stop() // idempotent
}
