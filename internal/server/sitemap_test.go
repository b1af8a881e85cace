package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap(t *testing.T) {
	app, _ := newTestServer(t, nil)

	status, body := doRequest(t, app, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, status)

	var entries []SitemapEntry
	require.NoError(t, json.Unmarshal(body, &entries))

	byPath := map[string][]string{}
	for _, e := range entries {
		_, dup := byPath[e.Path]
		require.False(t, dup, "path %s listed twice", e.Path)
		byPath[e.Path] = e.Methods
	}

	assert.Equal(t, []string{"GET"}, byPath["/"])
	assert.Equal(t, []string{"GET"}, byPath["/people"])
	assert.Equal(t, []string{"GET"}, byPath["/people/:id"])
	assert.Equal(t, []string{"GET"}, byPath["/planets/:id"])
	assert.Equal(t, []string{"GET"}, byPath["/vehicles"])
	assert.Equal(t, []string{"GET"}, byPath["/users"])
	assert.Equal(t, []string{"GET"}, byPath["/users/favorites"])
	assert.Equal(t, []string{"GET", "POST"}, byPath["/favorite/:kind"])
	assert.Equal(t, []string{"POST"}, byPath["/favorite/:kind/:entityId"])
	assert.Equal(t, []string{"DELETE", "PUT"}, byPath["/favorite/:kind/:favoriteId"])
	assert.Contains(t, byPath, "/health")
	assert.Contains(t, byPath, "/metrics")

	for path, methods := range byPath {
		assert.NotContains(t, methods, "HEAD", path)
	}
}
