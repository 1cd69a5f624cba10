// Package inspector exposes a read-only debug HTTP surface over the metadata
// registry and the normalized entity store. It is local development tooling;
// nothing here ever writes to the store.
package inspector

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/syncline-io/syncline/metadata"
	"github.com/syncline-io/syncline/store"
)

// Server serves the inspector endpoints.
type Server struct {
	registry *metadata.Registry
	entities store.EntityStore
	logger   *zap.Logger
}

// New creates an inspector over the given registry and store.
func New(registry *metadata.Registry, entities store.EntityStore, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		registry: registry,
		entities: entities,
		logger:   logger,
	}
}

// Router builds the inspector's route tree:
//
//	GET /objects               registered object names
//	GET /objects/{name}        one object's metadata
//	GET /records/{type}/{id}   one normalized entity
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/objects", s.handleListObjects)
	r.Get("/objects/{name}", s.handleGetObject)
	r.Get("/records/{type}/{id}", s.handleGetRecord)
	return r
}

func (s *Server) handleListObjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"objects": s.registry.List(),
		"count":   s.registry.Count(),
	})
}

func (s *Server) handleGetObject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	item, ok := s.registry.Get(name)
	if !ok {
		writeError(w, http.StatusNotFound, "object not found: "+name)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	typeName := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")

	entity, err := s.entities.ReadEntity(r.Context(), typeName, id)
	if err != nil {
		if store.IsEntityMiss(err) {
			writeError(w, http.StatusNotFound, "record not found: "+typeName+":"+id)
			return
		}
		s.logger.Error("entity read failed",
			zap.String("type", typeName),
			zap.String("id", id),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to read record")
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
