package middleware

import (
	"net/http"
	"strings"
)

// overrideField is the hidden form field HTML forms use to tunnel PUT and
// DELETE over POST.
const overrideField = "_method"

// MethodOverride rewrites tunneled POST requests before routing. It must wrap
// the router rather than run inside it, because the router dispatches on the
// original method.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err == nil {
				switch strings.ToUpper(r.PostForm.Get(overrideField)) {
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodDelete:
					r.Method = http.MethodDelete
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
