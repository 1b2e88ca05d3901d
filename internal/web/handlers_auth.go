package web

import (
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const boardCookieName = "anotador_board"

// boardPinHash returns the bcrypt hash of the board PIN, empty when the board
// is not locked.
func boardPinHash() string {
	return strings.TrimSpace(os.Getenv("BOARD_PIN_HASH"))
}

func (s *Server) handleUnlock(w http.ResponseWriter, r *http.Request) {
	if boardPinHash() == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	view := UnlockView{
		BaseView: BaseView{Title: "Desbloquear", Error: errorMessage(r)},
	}
	if err := s.templates.Render(w, "unlock.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleUnlockPost(w http.ResponseWriter, r *http.Request) {
	hash := boardPinHash()
	if hash == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "datos inválidos", http.StatusBadRequest)
		return
	}
	pin := r.FormValue("pin")
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) != nil {
		http.Redirect(w, r, "/unlock?error=wrong_pin", http.StatusSeeOther)
		return
	}
	setBoardCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func setBoardCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     boardCookieName,
		Value:    "unlocked",
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
