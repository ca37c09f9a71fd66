package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Geocode(t *testing.T) {
	var gotQuery, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`[{"lat":"31.2304","lon":"121.4737"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 100, 5*time.Second)
	lat, lon, err := client.Geocode(context.Background(), "100 Century Ave, Shanghai")
	require.NoError(t, err)

	assert.InDelta(t, 31.2304, lat, 0.0001)
	assert.InDelta(t, 121.4737, lon, 0.0001)
	assert.Equal(t, "100 Century Ave, Shanghai", gotQuery)
	assert.Equal(t, "medical-backend/1.0", gotAgent)
}

func TestClient_Geocode_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 100, 5*time.Second)
	_, _, err := client.Geocode(context.Background(), "nowhere at all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no match")
}

func TestClient_Geocode_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, 100, 5*time.Second)
	_, _, err := client.Geocode(context.Background(), "anywhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 429")
}

func TestClient_Geocode_BadCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"not-a-number","lon":"121.4737"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 100, 5*time.Second)
	_, _, err := client.Geocode(context.Background(), "anywhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad latitude")
}

func TestClient_Geocode_Throttles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"1","lon":"2"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 20, 5*time.Second)

	start := time.Now()
	for i := 0; i < 4; i++ {
		_, _, err := client.Geocode(context.Background(), "anywhere")
		require.NoError(t, err)
	}
	// Burst of 1 at 20 rps: three of the four calls wait 50ms each.
	assert.GreaterOrEqual(t, time.Since(start), 140*time.Millisecond)
}

func TestClient_Geocode_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"1","lon":"2"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 1, 5*time.Second)
	_, _, err := client.Geocode(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = client.Geocode(ctx, "second")
	assert.Error(t, err)
}
