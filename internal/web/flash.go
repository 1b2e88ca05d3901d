package web

import (
	"errors"
	"net/http"
	"strings"

	"anotador-app/internal/scoring"
	"anotador-app/internal/snapshot"
)

func flashMessage(r *http.Request) string {
	switch strings.TrimSpace(r.URL.Query().Get("notice")) {
	case "round_added":
		return "Mano anotada."
	case "match_won":
		winner := strings.TrimSpace(r.URL.Query().Get("winner"))
		if winner == "" {
			return "¡Partida ganada!"
		}
		return "¡" + winner + " gana la partida!"
	case "round_undone":
		return "Última mano deshecha."
	case "nothing_to_undo":
		return "No hay manos que deshacer."
	case "match_reset":
		return "Partida reiniciada."
	case "settings_saved":
		return "Configuración guardada."
	case "import_ok":
		return "Respaldo restaurado."
	case "sample_loaded":
		return "Datos de ejemplo cargados."
	}
	return ""
}

func errorMessage(r *http.Request) string {
	switch strings.TrimSpace(r.URL.Query().Get("error")) {
	case "invalid_round":
		return "Puntos inválidos: usa enteros no negativos y anota al menos un punto."
	case "invalid_config":
		return "Nombres inválidos: ambos equipos necesitan nombres distintos."
	case "invalid_backup":
		return "El archivo no es un respaldo válido; no se cambió nada."
	case "wrong_pin":
		return "PIN incorrecto."
	}
	return ""
}

// validationMessage maps domain errors to the inline message shown next to
// the form that caused them.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, scoring.ErrInvalidRound):
		return "Puntos inválidos: usa enteros no negativos y anota al menos un punto."
	case errors.Is(err, scoring.ErrInvalidConfig):
		return "Nombres inválidos: ambos equipos necesitan nombres distintos."
	case errors.Is(err, snapshot.ErrInvalidBackup):
		return "El archivo no es un respaldo válido; no se cambió nada."
	}
	return err.Error()
}
