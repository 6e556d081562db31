package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/pixil98/union-domain/internal/hub"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("encoding response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeHubError answers for a failed hub call: the hub's own status and
// message when it reported an HTTP error, otherwise 502.
func writeHubError(w http.ResponseWriter, err error) {
	var hubErr *hub.Error
	if errors.As(err, &hubErr) {
		status := hubErr.Status
		if status < 400 {
			status = http.StatusBadGateway
		}
		writeError(w, status, hubErr.Message)
		return
	}
	writeError(w, http.StatusBadGateway, err.Error())
}
