package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost:8080", 0)
	client2 := NewHTTPClient("http://localhost:8080", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_AppliesSettings(t *testing.T) {
	client := NewHTTPClient("http://example.test", 3*time.Second)

	assert.Equal(t, "http://example.test", client.BaseURL)
	assert.Equal(t, "application/json", client.Header.Get("Accept"))
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_SendsRequestsToBaseURL(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/v1/payments/42")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "/v1/payments/42", gotPath)
	assert.Equal(t, "application/json", gotAccept)
}
