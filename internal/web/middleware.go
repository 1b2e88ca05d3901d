package web

import (
	"net/http"
	"strings"
)

// WithBoardLock gates the scoreboard behind the PIN screen when a board PIN
// is configured. Without BOARD_PIN_HASH the board is open.
func WithBoardLock(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if boardPinHash() == "" || isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		if cookie, err := r.Cookie(boardCookieName); err == nil && cookie.Value == "unlocked" {
			next.ServeHTTP(w, r)
			return
		}
		http.Redirect(w, r, "/unlock", http.StatusSeeOther)
	})
}

func isPublicPath(path string) bool {
	if path == "/unlock" || path == "/healthz" {
		return true
	}
	return strings.HasPrefix(path, "/static/")
}
