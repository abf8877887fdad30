package middleware

import (
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"
)

type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.responseData.size += size
	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.responseData.status = statusCode
}

// RequestLogger logs one line per handled request.
type RequestLogger struct{}

func (RequestLogger) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		data := &responseData{status: http.StatusOK}
		lw := loggingResponseWriter{ResponseWriter: w, responseData: data}

		next.ServeHTTP(&lw, r)

		logger.WithFields(logger.Fields{
			"method":   r.Method,
			"uri":      r.RequestURI,
			"status":   data.status,
			"size":     data.size,
			"duration": time.Since(start).String(),
		}).Info("request handled")
	})
}
