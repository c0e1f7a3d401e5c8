package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eikendev/sectxt"
)

func TestIsSecurityTxtContentType(t *testing.T) {
	require.True(t, isSecurityTxtContentType("text/plain; charset=utf-8"))
	require.True(t, isSecurityTxtContentType("text/plain;charset=UTF-8"))
	require.False(t, isSecurityTxtContentType("text/html; charset=utf-8"))
	require.False(t, isSecurityTxtContentType("text/plain"))
	require.False(t, isSecurityTxtContentType(""))
}

func TestAcceptResponseAcceptsValidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/security.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Contact: https://a/\nExpires: 2099-01-01T00:00:00Z\n"))
	}))
	defer srv.Close()

	client := srv.Client()
	opts := sectxt.Options{Now: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}

	resp, err := client.Get(srv.URL + "/.well-known/security.txt")
	require.NoError(t, err)
	o := acceptResponse("example.test", resp, opts)
	resp.Body.Close()

	require.True(t, o.ok)
	require.Equal(t, 2, o.fieldCount)
}

func TestAcceptResponseRejectsWrongContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	o := acceptResponse("example.test", resp, sectxt.Options{})
	resp.Body.Close()

	require.False(t, o.ok)
	require.Error(t, o.err)
}

func TestAcceptResponseRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	o := acceptResponse("example.test", resp, sectxt.Options{})
	resp.Body.Close()

	require.False(t, o.ok)
}

func TestReadDomainsSkipsBlankLines(t *testing.T) {
	domains, err := readDomains(strings.NewReader("a.test\n\nb.test\n  \nc.test\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a.test", "b.test", "c.test"}, domains)
}
