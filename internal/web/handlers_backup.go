package web

import (
	"io"
	"net/http"
	"time"

	"anotador-app/internal/snapshot"
)

const maxBackupSize = 1 << 20

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := snapshot.Encode(s.snapshotState())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	filename := "anotador-" + time.Now().Format("2006-01-02") + ".json"
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(data)
}

// handleImport replaces the whole state with an uploaded snapshot. The file
// is decoded and shape-checked before the lock is taken, so a bad backup
// never touches the current state.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxBackupSize); err != nil {
		http.Redirect(w, r, "/?error=invalid_backup", http.StatusSeeOther)
		return
	}
	file, _, err := r.FormFile("backup")
	if err != nil {
		http.Redirect(w, r, "/?error=invalid_backup", http.StatusSeeOther)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBackupSize))
	if err != nil {
		http.Redirect(w, r, "/?error=invalid_backup", http.StatusSeeOther)
		return
	}
	state, err := snapshot.Decode(data)
	if err != nil {
		http.Redirect(w, r, "/?error=invalid_backup", http.StatusSeeOther)
		return
	}

	s.mu.Lock()
	s.state = state
	s.persistLocked()
	s.mu.Unlock()

	http.Redirect(w, r, "/?notice=import_ok", http.StatusSeeOther)
}
