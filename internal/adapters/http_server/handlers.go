package httpserver

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wanderlens/internal/adapters/pdf"
	"wanderlens/internal/app"
	"wanderlens/internal/domain"
)

const maxBody = 1 << 20

type Handlers struct{ S *app.PlanService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type planRequest struct {
	Analysis    domain.AnalysisResult      `json:"analysis"`
	Constraints domain.PlanningConstraints `json:"constraints"`
}

type refineRequest struct {
	Message string          `json:"message"`
	Bundles []domain.Bundle `json:"bundles"`
}

type bookRequest struct {
	BundleID string `json:"bundleId"`
}

type idsResponse struct {
	IDs []string `json:"ids"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", h.analyze)
		r.Post("/plans", h.plan)
		r.Post("/refine", h.refine)
		r.Get("/bundles", h.listBundles)
		r.Get("/bundles/{id}/alternatives", h.alternative)
		r.Post("/bookings", h.book)
		r.Get("/bookings/{ref}", h.getBooking)
		r.Get("/share/{id}", h.share)
		r.Get("/share/{id}/itinerary.pdf", h.itinerary)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeErr maps service errors onto problem responses.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusUnprocessableEntity, "Invalid Request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		log.Error().Err(err).Str("path", r.URL.Path).Msg("backend unavailable")
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "catalog is unavailable")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "request cancelled")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("unhandled error")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// decode reads a size-limited JSON body into dst, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeProblem(w, http.StatusRequestEntityTooLarge, "Payload Too Large", "request body exceeds 1MiB")
			return false
		}
		writeProblem(w, http.StatusBadRequest, "Malformed JSON", err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached serves v with a weak ETag and honours If-None-Match.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write cached body")
	}
}

func (h *Handlers) analyze(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeRequest
	if !decode(w, r, &req) {
		return
	}
	out, err := h.S.Analyze(r.Context(), req)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) plan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if !decode(w, r, &req) {
		return
	}
	out, err := h.S.Plan(r.Context(), req.Analysis, req.Constraints)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) refine(w http.ResponseWriter, r *http.Request) {
	var req refineRequest
	if !decode(w, r, &req) {
		return
	}
	out, err := h.S.Refine(r.Context(), req.Message, req.Bundles)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) listBundles(w http.ResponseWriter, r *http.Request) {
	ids, err := h.S.ShareIDs(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeCached(w, r, idsResponse{IDs: ids})
}

func (h *Handlers) alternative(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		writeProblem(w, http.StatusBadRequest, "Missing mode", "mode must be one of cheaper, eco, luxury, accessible")
		return
	}
	out, err := h.S.Alternative(r.Context(), chi.URLParam(r, "id"), mode)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) book(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if !decode(w, r, &req) {
		return
	}
	out, err := h.S.Book(r.Context(), req.BundleID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/bookings/"+url.PathEscape(out.Ref))
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.ResolveBooking(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) share(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.Share(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) itinerary(w http.ResponseWriter, r *http.Request) {
	v, err := h.S.Share(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	// render fully before writing headers so a failure can still be a problem response
	var buf bytes.Buffer
	if err := pdf.Itinerary(&buf, v); err != nil {
		log.Error().Err(err).Str("bundle_id", v.Bundle.ID).Msg("render itinerary failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not render itinerary")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="wanderlens-`+url.PathEscape(v.Bundle.ID)+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("failed to write itinerary body")
	}
}
