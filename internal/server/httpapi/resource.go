package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
	"github.com/umar-hyatt/gardenkeeper/internal/logging"
)

// Input is a create/update payload for an owned resource. Create validation
// requires the full field set; update validation only checks the fields that
// are present.
type Input interface {
	ValidateCreate() error
	ValidateUpdate() error
}

// Store is the ownership-scoped store contract shared by plants, tasks and
// observations. Every call carries the verified caller identity; records of
// other users behave exactly like missing ones.
type Store[I Input, T any] interface {
	List(ctx context.Context, userID string) ([]T, error)
	Create(ctx context.Context, userID string, in I) (T, error)
	Update(ctx context.Context, userID, id string, in I) (T, error)
	Delete(ctx context.Context, userID, id string) error
}

// decodeInput parses the request body into a fresh I, rejecting unknown
// fields and empty bodies before any validation runs.
func decodeInput[I Input](r *http.Request) (I, error) {
	var in I

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		var zero I
		return zero, fmt.Errorf("%w: malformed request body", common.ErrorValidation)
	}
	if v := reflect.ValueOf(in); !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		var zero I
		return zero, fmt.Errorf("%w: empty request body", common.ErrorValidation)
	}

	return in, nil
}

// mountResource wires the uniform CRUD endpoints for one resource type onto
// the router. The three resources get identical request handling; only the
// schema behind I and T differs.
func mountResource[I Input, T any](r chi.Router, pattern, name string, store Store[I, T], log logging.Logger) {

	log = log.With("resource", pattern)

	r.Route(pattern, func(rr chi.Router) {

		rr.Get("/", func(w http.ResponseWriter, req *http.Request) {
			userID := mustUserID(req)

			records, err := store.List(req.Context(), userID)
			if err != nil {
				writeError(req.Context(), w, log, err)
				return
			}
			writeJSON(w, http.StatusOK, records)
		})

		rr.Post("/", func(w http.ResponseWriter, req *http.Request) {
			userID := mustUserID(req)

			in, err := decodeInput[I](req)
			if err != nil {
				writeError(req.Context(), w, log, err)
				return
			}
			if err := in.ValidateCreate(); err != nil {
				writeError(req.Context(), w, log, err)
				return
			}

			record, err := store.Create(req.Context(), userID, in)
			if err != nil {
				writeError(req.Context(), w, log, err)
				return
			}
			writeJSON(w, http.StatusCreated, record)
		})

		rr.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
			userID := mustUserID(req)
			id := chi.URLParam(req, "id")

			in, err := decodeInput[I](req)
			if err != nil {
				writeError(req.Context(), w, log, err)
				return
			}
			if err := in.ValidateUpdate(); err != nil {
				writeError(req.Context(), w, log, err)
				return
			}

			record, err := store.Update(req.Context(), userID, id, in)
			if err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					writeMessage(w, http.StatusNotFound, name+" not found")
					return
				}
				writeError(req.Context(), w, log, err)
				return
			}
			writeJSON(w, http.StatusOK, record)
		})

		rr.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
			userID := mustUserID(req)
			id := chi.URLParam(req, "id")

			if err := store.Delete(req.Context(), userID, id); err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					writeMessage(w, http.StatusNotFound, name+" not found")
					return
				}
				writeError(req.Context(), w, log, err)
				return
			}
			writeMessage(w, http.StatusOK, name+" deleted successfully")
		})
	})
}
