// Package mockregistry serves the folkv3 JSON API from an in-memory dataset
// so the sample and the client tests have a registry to talk to.
package mockregistry

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"folkv3/internal/platform/middleware"
	"folkv3/internal/registry/models"
	"folkv3/internal/registry/wire"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

// Handler serves the registry API.
type Handler struct {
	data   *Dataset
	logger *slog.Logger
}

func NewHandler(data *Dataset, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{data: data, logger: logger}
}

// Router mounts the API under wire.BasePath.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Route(wire.BasePath, func(r chi.Router) {
		r.Use(middleware.RequireXRoadClient(h.logger))
		r.Get(wire.PathPrivileges, h.handlePrivileges)
		r.Post(wire.PathSmallPerson, h.handleSmallPerson)
		r.Post(wire.PathMediumPerson, h.handleMediumPerson)
		r.Get(wire.PathPrivateChanges, h.handlePrivateChanges)
		r.Get(wire.PathPublicChanges, h.handlePublicChanges)
		r.Post(wire.PathCommunity, h.handleAddToCommunity)
		r.Post(wire.PathCommunityRemoveAll, h.handleRemoveAll)
		r.Delete(wire.PathCommunity+"/{id}", h.handleRemove)
	})
	return r
}

func (h *Handler) handlePrivileges(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, wire.PrivilegesResponse{Privileges: h.data.Privileges()})
}

func (h *Handler) handleSmallPerson(w http.ResponseWriter, r *http.Request) {
	person, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, person.PersonSmall)
}

func (h *Handler) handleMediumPerson(w http.ResponseWriter, r *http.Request) {
	person, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, person)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*models.PersonMedium, bool) {
	var req wire.PersonRequest
	if !h.decode(w, r, &req) {
		return nil, false
	}
	person, err := h.data.Find(req)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return nil, false
	}
	if person == nil {
		h.writeError(w, r, http.StatusNotFound, "not_found", "person was not found")
		return nil, false
	}
	return person, true
}

func (h *Handler) handlePrivateChanges(w http.ResponseWriter, r *http.Request) {
	since, ok := h.since(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, h.data.PrivateChanges(since))
}

func (h *Handler) handlePublicChanges(w http.ResponseWriter, r *http.Request) {
	since, ok := h.since(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, r, http.StatusOK, h.data.PublicChanges(since))
}

func (h *Handler) since(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get(wire.QuerySince)
	since, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "bad_request", "since must be an RFC 3339 timestamp")
		return time.Time{}, false
	}
	return since, true
}

func (h *Handler) handleAddToCommunity(w http.ResponseWriter, r *http.Request) {
	var req wire.PersonRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Name == nil {
		h.writeError(w, r, http.StatusBadRequest, "bad_request", "community members are added by name and address or name and date of birth")
		return
	}
	result, err := h.data.AddToCommunity(req)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	h.writeJSON(w, r, http.StatusOK, wire.FromCommunityPerson(result))
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "bad_request", "id must be an integer")
		return
	}
	id, err := models.NewPrivateID(value)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if !h.data.RemoveFromCommunity(id) {
		h.writeError(w, r, http.StatusNotFound, "not_found", "person is not a community member")
		return
	}
	h.writeJSON(w, r, http.StatusOK, wire.RemoveResponse{ID: id})
}

func (h *Handler) handleRemoveAll(w http.ResponseWriter, r *http.Request) {
	var req wire.RemoveManyRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.writeJSON(w, r, http.StatusOK, wire.RemoveManyResponse{IDs: h.data.RemoveAllFromCommunity(req.IDs)})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, r, http.StatusRequestEntityTooLarge, "too_large", "request body too large")
			return false
		}
		h.writeError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write response",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	h.logger.InfoContext(r.Context(), "registry request rejected",
		"status", status,
		"code", code,
		"path", r.URL.Path,
		"client", middleware.GetClientID(r.Context()),
		"request_id", middleware.GetRequestID(r.Context()),
	)
	h.writeJSON(w, r, status, wire.ErrorResponse{Code: code, Message: message})
}
