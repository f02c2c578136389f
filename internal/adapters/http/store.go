package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"impactlens/internal/api"
	"impactlens/internal/domain"
	"impactlens/internal/store"
)

var storeKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

func checkKey(key string) error {
	if !storeKeyPattern.MatchString(key) {
		return fmt.Errorf("%w: bad key %q", domain.ErrInvalid, key)
	}
	return nil
}

func (s *Server) ListStoreKeys(w http.ResponseWriter, r *http.Request, _ api.ListStoreKeysParams) {
	keys, err := s.store.Keys(r.Context(), store.Workspace(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if keys == nil {
		keys = []string{}
	}
	writeJSON(w, http.StatusOK, api.StoreKeys{Keys: keys})
}

func (s *Server) GetStoreValue(w http.ResponseWriter, r *http.Request, key string, _ api.GetStoreValueParams) {
	if err := checkKey(key); err != nil {
		writeError(w, r, err)
		return
	}
	raw, found, err := s.store.Get(r.Context(), store.Workspace(r.Context()), key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !found {
		writeError(w, r, fmt.Errorf("key %s: %w", key, domain.ErrNotFound))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

func (s *Server) PutStoreValue(w http.ResponseWriter, r *http.Request, key string, _ api.PutStoreValueParams) {
	if err := checkKey(key); err != nil {
		writeError(w, r, err)
		return
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: read body: %v", domain.ErrInvalid, err))
		return
	}
	if !json.Valid(raw) {
		writeError(w, r, fmt.Errorf("%w: value is not JSON", domain.ErrInvalid))
		return
	}
	if err := s.store.Put(r.Context(), store.Workspace(r.Context()), key, raw); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeleteStoreValue(w http.ResponseWriter, r *http.Request, key string, _ api.DeleteStoreValueParams) {
	if err := checkKey(key); err != nil {
		writeError(w, r, err)
		return
	}
	deleted, err := s.store.Delete(r.Context(), store.Workspace(r.Context()), key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, r, fmt.Errorf("key %s: %w", key, domain.ErrNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
