package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/Aouidate/CartoonBuilder/pkg/errors"
	"github.com/Aouidate/CartoonBuilder/pkg/molecule"
	"github.com/Aouidate/CartoonBuilder/pkg/render/diagram"
	"github.com/Aouidate/CartoonBuilder/pkg/session"
)

// downloadFilename is the fixed name offered when the image is requested as
// an attachment.
const downloadFilename = "Saponin.png"

// =============================================================================
// Request / Response Bodies
// =============================================================================

type addComponentRequest struct {
	Name     string `json:"name"`
	Shape    string `json:"shape"`
	Color    string `json:"color"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

type addPointRequest struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type setScaffoldRequest struct {
	Name string `json:"name"`
}

type attachRequest struct {
	Point     string `json:"point"`
	Component string `json:"component"`
	Direction string `json:"direction"`
	Category  string `json:"category"`
}

type sessionResponse struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type componentsResponse struct {
	Scaffolds    []string `json:"scaffolds"`
	Sugars       []string `json:"sugars"`
	Substituents []string `json:"substituents"`
}

type namesResponse struct {
	Names []string `json:"names"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// Session Handlers
// =============================================================================

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := session.New(molecule.New(), time.Duration(s.cfg.Session.TTL))
	if err := s.store.Set(r.Context(), sess); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, sessionResponse{ID: sess.ID, ExpiresAt: sess.ExpiresAt})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess.State)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Mutation Handlers
// =============================================================================

// withBuilder runs one core mutation inside a load → mutate → store cycle.
func (s *Server) withBuilder(w http.ResponseWriter, r *http.Request, mutate func(*molecule.Builder) error) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	b, err := sess.Builder()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := mutate(b); err != nil {
		s.writeError(w, err)
		return
	}
	sess.Update(b)
	if err := s.store.Set(r.Context(), sess); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddComponent(w http.ResponseWriter, r *http.Request) {
	var req addComponentRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.withBuilder(w, r, func(b *molecule.Builder) error {
		cat, err := molecule.ParseCategory(req.Category)
		if err != nil {
			return err
		}
		return b.AddComponent(req.Name, molecule.Shape(req.Shape), req.Color, req.Label, cat)
	})
}

func (s *Server) handleAddAttachmentPoint(w http.ResponseWriter, r *http.Request) {
	var req addPointRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.withBuilder(w, r, func(b *molecule.Builder) error {
		return b.AddAttachmentPoint(req.Name, req.X, req.Y)
	})
}

func (s *Server) handleSetScaffold(w http.ResponseWriter, r *http.Request) {
	var req setScaffoldRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.withBuilder(w, r, func(b *molecule.Builder) error {
		return b.SetScaffold(req.Name)
	})
}

func (s *Server) handleAttachComponent(w http.ResponseWriter, r *http.Request) {
	var req attachRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.withBuilder(w, r, func(b *molecule.Builder) error {
		cat, err := molecule.ParseCategory(req.Category)
		if err != nil {
			return err
		}
		// Direction passes through unvalidated: unknown tags default to
		// Right at render time rather than failing here.
		return b.AttachComponent(req.Point, req.Component, molecule.Direction(req.Direction), cat)
	})
}

// =============================================================================
// Read Handlers
// =============================================================================

func (s *Server) handleListComponents(w http.ResponseWriter, r *http.Request) {
	b, ok := s.loadBuilder(w, r)
	if !ok {
		return
	}
	if q := r.URL.Query().Get("category"); q != "" {
		cat, err := molecule.ParseCategory(q)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, namesResponse{Names: b.Components.Names(cat)})
		return
	}
	s.writeJSON(w, http.StatusOK, componentsResponse{
		Scaffolds:    b.Components.Names(molecule.Scaffold),
		Sugars:       b.Components.Names(molecule.Sugar),
		Substituents: b.Components.Names(molecule.Substituent),
	})
}

func (s *Server) handleListAttachmentPoints(w http.ResponseWriter, r *http.Request) {
	b, ok := s.loadBuilder(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, namesResponse{Names: b.Points.Names()})
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	b, ok := s.loadBuilder(w, r)
	if !ok {
		return
	}
	data, err := diagram.Render(b.Molecule)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+downloadFilename+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) loadBuilder(w http.ResponseWriter, r *http.Request) (*molecule.Builder, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	b, err := sess.Builder()
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return b, true
}

// =============================================================================
// Encoding Helpers
// =============================================================================

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "invalid request body: " + err.Error(),
			Code:  string(apperrors.ErrCodeInvalidInput),
		})
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps failures to HTTP statuses: validation problems are 400,
// unregistered references and missing sessions are 404, everything else 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrExpired) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{
			Error: "session not found",
			Code:  string(apperrors.ErrCodeSessionNotFound),
		})
		return
	}

	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidShape,
		apperrors.ErrCodeInvalidColor, apperrors.ErrCodeInvalidCategory,
		apperrors.ErrCodeDuplicateAttachmentPoint:
		status = http.StatusBadRequest
	case apperrors.ErrCodeUnknownAttachmentPoint, apperrors.ErrCodeUnknownComponent:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("internal error", "err", err)
	}
	s.writeJSON(w, status, errorResponse{Error: apperrors.UserMessage(err), Code: string(code)})
}
