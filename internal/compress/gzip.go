package compress

import (
	"compress/gzip"
	"net/http"
	"strings"
)

// RequestUngzipper transparently decompresses gzip-encoded request bodies.
type RequestUngzipper struct{}

func (u RequestUngzipper) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		// a fresh reader per request, the middleware is shared between
		// concurrent requests
		reader, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer reader.Close()
		r.Body = reader
		next.ServeHTTP(w, r)
	})
}
