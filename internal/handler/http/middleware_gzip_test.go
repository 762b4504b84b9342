// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gunzip(t *testing.T, body io.Reader) string {
	t.Helper()
	r, err := gzip.NewReader(body)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		writeHeader    bool
		wantGzipped    bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", writeHeader: true, wantGzipped: true},
		{name: "client accepts nothing", acceptEncoding: "", writeHeader: true},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip, br", writeHeader: true, wantGzipped: true},
		{name: "gzip with quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", writeHeader: true, wantGzipped: true},
		{name: "other encodings only", acceptEncoding: "deflate, br", writeHeader: true},
		{name: "implicit status still marks encoding", acceptEncoding: "gzip", wantGzipped: true},
		{name: "gzip refused with zero quality", acceptEncoding: "gzip;q=0", writeHeader: true},
		{name: "gzip refused among others", acceptEncoding: "br, gzip; q=0.0", writeHeader: true},
		{name: "wildcard accepts gzip", acceptEncoding: "*", writeHeader: true, wantGzipped: true},
		{name: "explicit refusal beats wildcard", acceptEncoding: "*, gzip;q=0", writeHeader: true},
	}

	const body = `{"httpUnsafeOrigin":"http://localhost:3000"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.writeHeader {
					w.WriteHeader(http.StatusOK)
				}
				_, _ = w.Write([]byte(body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, body, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, body, rr.Body.String())
		})
	}
}

func TestAcceptsGzip(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"gzip", true},
		{"GZIP", true},
		{"gzip;q=0.001", true},
		{"gzip;q=0", false},
		{"gzip;q=0.000", false},
		{"gzip;q=bogus", false},
		{"deflate;q=1, gzip;q=0", false},
		{"*;q=0", false},
		{"*;q=0.5", true},
		{"gzip, *;q=0", true},
		{"x-gzip", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, acceptsGzip(tt.header))
		})
	}
}

func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat("/var/lib/cryptpad/data ", 1000)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10)
}

func TestGZip_EmptyResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "", gunzip(t, rr.Body))
}

// TestGZip_ConcurrentRequests exercises the writer pool from many
// goroutines at once.
func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(r.URL.Query().Get("n")))
	})
	handler := withGZip(next)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := strings.Repeat("x", i)

			req := httptest.NewRequest(http.MethodGet, "/api/version?n="+n, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			gz, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			defer gz.Close()
			got, err := io.ReadAll(gz)
			assert.NoError(t, err)
			assert.Equal(t, n, string(got))
		}()
	}
	wg.Wait()
}
