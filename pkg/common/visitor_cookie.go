package common

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const visitorCookieName = "vid"

func setVisitorCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookieName,
		Value:    id,
		Domain:   strings.TrimPrefix(r.Host, "."),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		MaxAge:   2592000,
		Path:     "/",
	})
}

// HandleVisitorCookie returns the anonymous visitor id for the request,
// issuing a fresh one when the cookie is missing or unparseable.
func HandleVisitorCookie(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(visitorCookieName)
	if err == nil {
		if _, parseErr := uuid.Parse(c.Value); parseErr == nil {
			return c.Value
		}
	}
	id := uuid.New().String()
	setVisitorCookie(w, r, id)
	return id
}
