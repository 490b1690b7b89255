package adaptor

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGatewayRoutesByPrefix(t *testing.T) {
	var gotPath, gotAuth string
	hotels := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"status":true,"message":"hotel"}`)
	}))
	defer hotels.Close()

	guests := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":true,"message":"guest"}`)
	}))
	defer guests.Close()

	gw, err := NewGatewayHandler(map[string]string{
		"/api/v1/hotels": hotels.URL,
		"/api/v1/guests": guests.URL,
	}, zap.NewNop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels/1/rooms/availability?from=2024-01-10&to=2024-01-12", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hotel"`)
	assert.Equal(t, "/api/v1/hotels/1/rooms/availability?from=2024-01-10&to=2024-01-12", gotPath)
	assert.Equal(t, "Bearer abc", gotAuth)

	rec = httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/guests?guest_name=alice", nil))
	assert.Contains(t, rec.Body.String(), `"guest"`)

	rec = httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/hotelsx", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGatewayUpstreamDown(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	url := down.URL
	down.Close()

	gw, err := NewGatewayHandler(map[string]string{"/api/v1/reservations": url}, zap.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestNewGatewayHandlerRejectsBadURL(t *testing.T) {
	_, err := NewGatewayHandler(map[string]string{"/api/v1/guests": "guest-service"}, zap.NewNop())
	assert.ErrorContains(t, err, "invalid upstream url")
}

func TestGatewayPrefixesLongestFirst(t *testing.T) {
	gw, err := NewGatewayHandler(map[string]string{
		"/api/v1":        "http://localhost:1",
		"/api/v1/hotels": "http://localhost:2",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"/api/v1/hotels", "/api/v1"}, gw.Prefixes())
}
