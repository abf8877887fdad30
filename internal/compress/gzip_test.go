package compress

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoServer() *httptest.Server {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Write(body)
	})
	return httptest.NewServer(RequestUngzipper{}.Handle(handler))
}

func gzipBody(payload string) io.Reader {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(payload))
	zw.Close()
	return &buf
}

func TestUngzipsRequestBody(t *testing.T) {

	server := echoServer()
	defer server.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL, gzipBody(`{"deposit": 200}`))
	require.NoError(t, err)
	req.Header.Set("Content-Encoding", "gzip")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"deposit": 200}`, string(body))
}

func TestPlainBodyPassesThrough(t *testing.T) {

	server := echoServer()
	defer server.Close()

	resp, err := http.Post(server.URL, "application/json", strings.NewReader("plain"))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(body))
}

func TestRejectsCorruptGzipBody(t *testing.T) {

	server := echoServer()
	defer server.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader("not gzip"))
	require.NoError(t, err)
	req.Header.Set("Content-Encoding", "gzip")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConcurrentGzipRequests(t *testing.T) {

	server := echoServer()
	defer server.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			payload := fmt.Sprintf("request %d", n)
			req, err := http.NewRequest(http.MethodPost, server.URL, gzipBody(payload))
			if !assert.NoError(t, err) {
				return
			}
			req.Header.Set("Content-Encoding", "gzip")

			resp, err := http.DefaultClient.Do(req)
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if assert.NoError(t, err) {
				assert.Equal(t, payload, string(body))
			}
		}(i)
	}
	wg.Wait()
}
