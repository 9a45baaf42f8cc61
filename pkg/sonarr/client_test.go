package sonarr

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
		assert.Equal(t, "/api/v3/series/lookup", r.URL.Path)
		assert.Equal(t, "breaking bad", r.URL.Query().Get("term"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"tvdbId":81189,"title":"Breaking Bad","year":2008,
			 "seasons":[{"seasonNumber":0},{"seasonNumber":1},{"seasonNumber":2}],
			 "ratings":{"votes":12000,"value":9.4}}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	results, err := client.Search(context.Background(), "breaking bad")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(81189), results[0].TVDBID)
	assert.Equal(t, 2008, results[0].Year)
	assert.Equal(t, 2, results[0].SeasonCount(), "specials season must not count")
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
		assert.Equal(t, "/api/v3/series", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(81189), payload["tvdbId"])
		assert.Equal(t, "/tv", payload["rootFolderPath"])
		assert.Equal(t, true, payload["monitored"])

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	err := client.Register(context.Background(),
		SeriesCandidate{TVDBID: 81189, Title: "Breaking Bad", Year: 2008}, "/tv", 2)
	assert.NoError(t, err)
}

func TestClient_Register_AlreadyExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[{"errorMessage":"This series has already been added"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	err := client.Register(context.Background(), SeriesCandidate{TVDBID: 81189}, "/tv", 1)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSeriesCandidate_SeasonCount(t *testing.T) {
	tests := []struct {
		name    string
		seasons []Season
		want    int
	}{
		{"no seasons", nil, 0},
		{"specials only", []Season{{SeasonNumber: 0}}, 0},
		{"mixed", []Season{{SeasonNumber: 0}, {SeasonNumber: 1}, {SeasonNumber: 2}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &SeriesCandidate{Seasons: tt.seasons}
			if got := c.SeasonCount(); got != tt.want {
				t.Errorf("SeasonCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
