package peer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slaz/gameservices/internal/model"
	"github.com/slaz/gameservices/internal/testutil"
)

func TestCallSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":"hello"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testutil.NopLogger())

	var result struct {
		Value string `json:"value"`
	}
	ok := client.Get(context.Background(), "/thing", &result)

	require.True(t, ok)
	assert.Equal(t, "hello", result.Value)
}

func TestCallSuccessWithoutResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, testutil.NopLogger())

	ok := client.Get(context.Background(), "/thing", nil)
	assert.True(t, ok)
}

func TestCallErrorStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusNotModified} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(server.URL, testutil.NopLogger())
		ok := client.Get(context.Background(), "/thing", nil)
		assert.False(t, ok, "status %d should not count as success", status)

		server.Close()
	}
}

func TestCallUnreachablePeer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, testutil.NopLogger())

	ok := client.Get(context.Background(), "/thing", nil)
	assert.False(t, ok)
}

func TestCallUndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testutil.NopLogger())

	var result map[string]any
	ok := client.Get(context.Background(), "/thing", &result)
	assert.False(t, ok)
}

func TestCallSendsJSONBody(t *testing.T) {
	var received struct {
		Name string `json:"name"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, testutil.NopLogger())

	ok := client.Post(context.Background(), "/thing", map[string]string{"name": "alice"}, nil)
	require.True(t, ok)
	assert.Equal(t, "alice", received.Name)
}

func TestGameExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/game/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"name":"chess","status":"NEW"}`))
	}))
	defer server.Close()

	gc := NewGameClient(NewClient(server.URL, testutil.NopLogger()))

	assert.True(t, gc.GameExists(context.Background(), 7))
}

func TestGameExistsAbsentGame(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gc := NewGameClient(NewClient(server.URL, testutil.NopLogger()))

	assert.False(t, gc.GameExists(context.Background(), 99))
}

func TestRegisterPlayer(t *testing.T) {
	var received registrationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/player/registration", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	pc := NewPlayerClient(NewClient(server.URL, testutil.NopLogger()))

	ok := pc.RegisterPlayer(context.Background(), "alice", 3)
	require.True(t, ok)
	assert.Equal(t, "alice", received.Name)
	assert.Equal(t, int64(3), received.GameID)
}

func TestGameIDsByPlayerName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/player/gameIds", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("name"))
		_, _ = w.Write([]byte(`[1,3,3]`))
	}))
	defer server.Close()

	pc := NewPlayerClient(NewClient(server.URL, testutil.NopLogger()))

	ids, ok := pc.GameIDsByPlayerName(context.Background(), "alice")
	require.True(t, ok)
	assert.Equal(t, []model.GameID{1, 3, 3}, ids)
}

func TestGameIDsByPlayerNameEmptyListIsAuthoritative(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	pc := NewPlayerClient(NewClient(server.URL, testutil.NopLogger()))

	ids, ok := pc.GameIDsByPlayerName(context.Background(), "alice")
	require.True(t, ok)
	assert.Empty(t, ids)
}

func TestGameIDsByPlayerNameUnreachablePeer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	pc := NewPlayerClient(NewClient(server.URL, testutil.NopLogger()))

	_, ok := pc.GameIDsByPlayerName(context.Background(), "alice")
	assert.False(t, ok)
}
