package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"invoicegen/m/domain"
	"invoicegen/m/internal/builder"
	"invoicegen/m/internal/format"
	"invoicegen/m/internal/render"
	"invoicegen/m/internal/seed"
	"invoicegen/m/internal/store"
	"invoicegen/m/internal/suggest"
	"invoicegen/m/internal/totals"
)

const maxBodyBytes = 1 << 20

// Documents is the persistence the handlers need.
type Documents interface {
	Save(ctx context.Context, doc domain.Document) (domain.SavedDocument, error)
	Get(ctx context.Context, id snowflake.ID) (domain.SavedDocument, error)
	List(ctx context.Context, f store.Filter) ([]domain.SavedDocument, error)
	Delete(ctx context.Context, id snowflake.ID) error
	Counts(ctx context.Context) (domain.Stats, error)
}

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	docs     Documents
	builder  *builder.Builder
	provider suggest.Provider
	log      *slog.Logger
}

// New constructs a Handler.
func New(docs Documents, b *builder.Builder, p suggest.Provider) *Handler {
	return &Handler{docs: docs, builder: b, provider: p, log: slog.Default()}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)
	r.Post("/totals", h.liveTotals)
	r.Get("/stats", h.stats)

	r.Route("/samples", func(r chi.Router) {
		r.Get("/", h.listSamples)
		r.Get("/{name}", h.getSample)
	})

	r.Route("/documents", func(r chi.Router) {
		r.Get("/", h.listDocuments)
		r.Post("/{type}", h.saveDocument)
		r.Post("/{type}/preview", h.previewDocument)
		r.Post("/{type}/suggestions", h.suggestDocument)
		r.Get("/{id}", h.getDocument)
		r.Get("/{id}/preview", h.previewSaved)
		r.Delete("/{id}", h.deleteDocument)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Live totals

type totalsRequest struct {
	Items      []domain.LineItem `json:"items"`
	TaxPercent domain.Number     `json:"taxPercent"`
}

type totalsResponse struct {
	Rows       []totals.Row `json:"rows"`
	Subtotal   float64      `json:"subtotal"`
	TaxAmount  float64      `json:"taxAmount"`
	GrandTotal float64      `json:"grandTotal"`
	Display    struct {
		Subtotal   string `json:"subtotal"`
		TaxAmount  string `json:"taxAmount"`
		GrandTotal string `json:"grandTotal"`
	} `json:"display"`
}

func (h *Handler) liveTotals(w http.ResponseWriter, r *http.Request) {
	var req totalsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	t := totals.Compute(req.Items, req.TaxPercent.Value())
	resp := totalsResponse{
		Rows:       totals.Rows(req.Items),
		Subtotal:   t.Subtotal,
		TaxAmount:  t.TaxAmount,
		GrandTotal: t.GrandTotal,
	}
	resp.Display.Subtotal = format.Currency(t.Subtotal)
	resp.Display.TaxAmount = format.Currency(t.TaxAmount)
	resp.Display.GrandTotal = format.Currency(t.GrandTotal)
	respondJSON(w, http.StatusOK, resp)
}

// Document handlers

// buildFromRequest decodes the raw fields and builds the document named by
// the {type} URL parameter. It writes the error response itself.
func (h *Handler) buildFromRequest(w http.ResponseWriter, r *http.Request) (domain.Document, bool) {
	variant := chi.URLParam(r, "type")
	if _, err := domain.ParseDocumentType(variant); err != nil {
		h.respondErr(w, r, err)
		return domain.Document{}, false
	}
	var raw builder.RawFields
	if err := decodeJSON(w, r, &raw); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return domain.Document{}, false
	}
	doc, err := h.builder.Build(variant, raw)
	if err != nil {
		h.respondErr(w, r, err)
		return domain.Document{}, false
	}
	return doc, true
}

func (h *Handler) previewDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildFromRequest(w, r)
	if !ok {
		return
	}
	h.respondRendered(w, r, doc)
}

type suggestionsResponse struct {
	Suggestions []suggest.Suggestion `json:"suggestions"`
	Description string               `json:"description"`
}

func (h *Handler) suggestDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildFromRequest(w, r)
	if !ok {
		return
	}
	suggestions, err := h.provider.Suggest(r.Context(), doc)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, suggestionsResponse{Suggestions: suggestions, Description: suggest.Describe(doc)})
}

func (h *Handler) saveDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildFromRequest(w, r)
	if !ok {
		return
	}
	saved, err := h.docs.Save(r.Context(), doc)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.log.Info("document saved", "id", saved.ID.String(), "type", saved.Type, "number", saved.Number)
	respondJSON(w, http.StatusCreated, saved)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	var f store.Filter
	if t := strings.TrimSpace(r.URL.Query().Get("type")); t != "" {
		typ, err := domain.ParseDocumentType(t)
		if err != nil {
			h.respondErr(w, r, err)
			return
		}
		f.Type = typ
	}
	f.Search = r.URL.Query().Get("q")

	docs, err := h.docs.List(r.Context(), f)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, docs)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	saved, ok := h.loadSaved(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

func (h *Handler) previewSaved(w http.ResponseWriter, r *http.Request) {
	saved, ok := h.loadSaved(w, r)
	if !ok {
		return
	}
	h.respondRendered(w, r, saved.Document)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := snowflake.ParseString(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid document id")
		return
	}
	if err := h.docs.Delete(r.Context(), id); err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) loadSaved(w http.ResponseWriter, r *http.Request) (domain.SavedDocument, bool) {
	id, err := snowflake.ParseString(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid document id")
		return domain.SavedDocument{}, false
	}
	saved, err := h.docs.Get(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return domain.SavedDocument{}, false
	}
	return saved, true
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.docs.Counts(r.Context())
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Samples

func (h *Handler) listSamples(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, seed.Samples())
}

func (h *Handler) getSample(w http.ResponseWriter, r *http.Request) {
	sample, ok := seed.Lookup(chi.URLParam(r, "name"))
	if !ok {
		respondError(w, http.StatusNotFound, "sample not found")
		return
	}
	respondJSON(w, http.StatusOK, sample)
}

// Helpers

// respondRendered writes doc in the format named by the "format" query
// parameter, HTML by default.
func (h *Handler) respondRendered(w http.ResponseWriter, r *http.Request, doc domain.Document) {
	name := r.URL.Query().Get("format")
	if name == "" {
		name = string(render.OutputHTML)
	}
	out, err := render.ParseOutput(name)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, doc, out); err != nil {
		h.respondErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", out.ContentType())
	if out == render.OutputPDF {
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Number+out.Extension()))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// respondErr maps domain errors onto status codes. Anything unexpected is
// logged and reported as a 500 without details.
func (h *Handler) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDocumentType), errors.Is(err, render.ErrUnknownOutput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidAmount):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
