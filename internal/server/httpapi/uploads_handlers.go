package httpapi

import (
	"fmt"
	"net/http"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
)

func (s *Server) handlePresignUpload(w http.ResponseWriter, r *http.Request) {

	key, url, err := s.uploads.GetPresignedPutUrl(r.Context(), mustUserID(r))
	if err != nil {
		writeError(r.Context(), w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"key": key, "uploadUrl": url})
}

func (s *Server) handlePresignDownload(w http.ResponseWriter, r *http.Request) {

	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(r.Context(), w, s.logger, fmt.Errorf("%w: key is required", common.ErrorValidation))
		return
	}

	url, err := s.uploads.GetPresignedGetUrl(r.Context(), key)
	if err != nil {
		writeError(r.Context(), w, s.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
