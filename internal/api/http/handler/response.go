package handler

import (
	"encoding/json"
	"net/http"

	httpctx "github.com/dtroode/izakaya-server/internal/api/http/context"
	"github.com/dtroode/izakaya-server/internal/logger"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// requestLogger tags l with the request id of r when one is set.
func requestLogger(l *logger.Logger, r *http.Request) *logger.Logger {
	if requestID, ok := httpctx.GetRequestIDFromContext(r.Context()); ok {
		return l.With("request_id", requestID)
	}
	return l
}
