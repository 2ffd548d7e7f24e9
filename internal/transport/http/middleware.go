package http

import (
	"log"
	"net/http"
	"time"
)

// RequestLogger emits one line per request with method, path, status,
// response size, and elapsed time.
func RequestLogger(next http.Handler, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		meta := &responseMeta{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(meta, r)

		logger.Printf(
			"request method=%s path=%s status=%d bytes=%d duration=%s",
			r.Method, r.URL.Path, meta.status, meta.written, time.Since(started),
		)
	})
}

// responseMeta captures the status code and body size as the handler
// writes them.
type responseMeta struct {
	http.ResponseWriter
	status  int
	written int
}

func (m *responseMeta) WriteHeader(code int) {
	m.status = code
	m.ResponseWriter.WriteHeader(code)
}

func (m *responseMeta) Write(p []byte) (int, error) {
	n, err := m.ResponseWriter.Write(p)
	m.written += n
	return n, err
}
