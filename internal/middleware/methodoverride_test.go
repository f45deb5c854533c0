package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodOverrideRewritesTunneledDelete(t *testing.T) {
	var seen string
	handler := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	form := url.Values{"_method": {"DELETE"}}
	req := httptest.NewRequest(http.MethodPost, "/students/s1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, http.MethodDelete, seen)
}

func TestMethodOverrideRewritesTunneledPut(t *testing.T) {
	var seen string
	handler := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	form := url.Values{"_method": {"put"}, "name": {"Alice"}}
	req := httptest.NewRequest(http.MethodPost, "/students/s1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, http.MethodPut, seen)
}

func TestMethodOverrideIgnoresPlainRequests(t *testing.T) {
	var seen string
	handler := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	req := httptest.NewRequest(http.MethodGet, "/students?_method=DELETE", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, http.MethodGet, seen)

	form := url.Values{"_method": {"PATCH"}}
	post := httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(form.Encode()))
	post.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler.ServeHTTP(httptest.NewRecorder(), post)
	assert.Equal(t, http.MethodPost, seen)
}
