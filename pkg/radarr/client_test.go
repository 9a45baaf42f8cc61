package radarr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/movie/lookup", r.URL.Path)
		assert.Equal(t, "the matrix", r.URL.Query().Get("term"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"tmdbId":603,"title":"The Matrix","year":1999,"genres":["Action"],"ratings":{"votes":24000,"value":8.2}},
			{"tmdbId":604,"title":"The Matrix Reloaded","year":2003}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	results, err := client.Search(context.Background(), "the matrix")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(603), results[0].TMDBID)
	assert.Equal(t, "The Matrix", results[0].Title)
	assert.Equal(t, 1999, results[0].Year)
	assert.Equal(t, 8.2, results[0].Ratings.Value)
}

func TestClient_Search_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key")

	_, err := client.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v3/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(603), payload["tmdbId"])
		assert.Equal(t, "/movies", payload["rootFolderPath"])
		assert.Equal(t, float64(4), payload["qualityProfileId"])
		assert.Equal(t, true, payload["monitored"])

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	err := client.Register(context.Background(),
		MovieCandidate{TMDBID: 603, Title: "The Matrix", Year: 1999}, "/movies", 4)
	assert.NoError(t, err)
}

func TestClient_Register_AlreadyExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[{"errorMessage":"This movie has already been added"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	err := client.Register(context.Background(), MovieCandidate{TMDBID: 603}, "/movies", 1)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestClient_Register_ValidationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[{"errorMessage":"QualityProfileId must be set"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	err := client.Register(context.Background(), MovieCandidate{TMDBID: 603}, "/movies", 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), "QualityProfileId")
}
