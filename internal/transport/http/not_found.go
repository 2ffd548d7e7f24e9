package http

import "net/http"

// NotFoundHandler is the catch-all route. Unknown paths get the JSON
// error envelope instead of the stdlib plain-text 404.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "no such route: "+r.URL.Path)
	})
}
