package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
	"github.com/umar-hyatt/gardenkeeper/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps the sentinel error taxonomy onto HTTP statuses. Store
// failures come back as an opaque 500; their details only reach the log.
func writeError(ctx context.Context, w http.ResponseWriter, log logging.Logger, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrorAlreadyExists):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrorInvalidToken):
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	default:
		log.Error(ctx, "request failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
