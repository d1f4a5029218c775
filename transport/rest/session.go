package rest

import (
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/pkg"
)

const sessionCookie = "user_session"

// sessionID - reads the session cookie, issuing a new one when absent.
func sessionID(w http.ResponseWriter, r *http.Request, ttl time.Duration) string {
	cookie, err := r.Cookie(sessionCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := pkg.GenerateNewSessionID()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}
