package xbrl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContactEmail_MissingEnvVar(t *testing.T) {
	t.Setenv(ChEmailEnvVar, "")
	_, err := GetContactEmail()
	assert.Error(t, err)
}

func TestGetContactEmail_InvalidFormat(t *testing.T) {
	t.Setenv(ChEmailEnvVar, "not-an-email")
	_, err := GetContactEmail()
	assert.Error(t, err)
}

func TestGetContactEmail_Valid(t *testing.T) {
	t.Setenv(ChEmailEnvVar, "bulk-data@example.com")
	email, err := GetContactEmail()
	require.NoError(t, err)
	assert.Equal(t, "bulk-data@example.com", email)
}

func TestBuildUserAgent_EmbedsVersionAndEmail(t *testing.T) {
	ua := BuildUserAgent("bulk-data@example.com")
	assert.Contains(t, ua, "stream-read-xbrl/")
	assert.Contains(t, ua, "bulk-data@example.com")
}

func TestFetchArchive_SendsUserAgentAndReturnsBody(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("archive-bytes"))
	}))
	defer srv.Close()

	f := NewFetcher("bulk-data@example.com", time.Millisecond)
	body, err := f.FetchArchive(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "archive-bytes", string(body))
	assert.Contains(t, gotUserAgent, "bulk-data@example.com")
}

func TestFetchArchive_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher("bulk-data@example.com", time.Millisecond)
	_, err := f.FetchArchive(context.Background(), srv.URL)
	assert.Error(t, err)
}
