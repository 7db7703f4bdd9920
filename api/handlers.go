/*
handlers.go - HTTP API handlers for the eligibility checker

PURPOSE:
  Exposes the eligibility evaluator via REST API. Handles HTTP
  request/response, JSON serialization, locale negotiation, and delegates
  to childcare (validation + evaluation) and locale (text).

ENDPOINTS:
  GET    /api/health                    Liveness
  GET    /api/locales                   Supported locales
  POST   /api/eligibility               Validate and evaluate a submission
  GET    /api/scenarios                 List preset submissions
  GET    /api/scenarios/{id}            Get one preset
  POST   /api/scenarios/{id}/evaluate   Evaluate a preset

REQUEST FLOW:
  1. Resolve locale (?lang=, lang cookie, Accept-Language, default)
  2. Decode body
  3. childcare.ParseForm (400 with localized field errors on failure)
  4. childcare.Evaluate
  5. Render report, serialize response

ERROR HANDLING:
  - 400: malformed JSON, validation errors
  - 404: unknown scenario
  - 413: body larger than 64 KiB
  - 500: unexpected parse or lookup failure

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/warp/leave-eligibility/childcare"
	"github.com/warp/leave-eligibility/generic"
	"github.com/warp/leave-eligibility/locale"
)

const (
	// LangParam selects a locale for one request and persists it as a cookie.
	LangParam = "lang"
	// LangCookieName stores the user's locale preference.
	LangCookieName = "lang"

	maxBodyBytes = 64 << 10
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Catalog       *locale.Catalog
	Logger        *slog.Logger
	DefaultLocale language.Tag

	newID func() string
}

// NewHandler creates a handler. An unsupported defaultLocale falls back to
// the catalog's base locale.
func NewHandler(catalog *locale.Catalog, logger *slog.Logger, defaultLocale language.Tag) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Catalog:       catalog,
		Logger:        logger,
		DefaultLocale: catalog.Match(defaultLocale),
		newID:         func() string { return uuid.NewString() },
	}
}

// =============================================================================
// EVALUATION HANDLERS
// =============================================================================

// Evaluate validates and evaluates a submitted form.
// POST /api/eligibility
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	tag := h.resolveLocale(w, r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var req EvaluateRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.evaluate(w, r, tag, "", req)
}

// ListScenarios returns the preset submissions.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	presets := childcare.Scenarios()
	dtos := make([]ScenarioDTO, len(presets))
	for i, s := range presets {
		dtos[i] = toScenarioDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetScenario returns one preset submission.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	s, err := childcare.FindScenario(chi.URLParam(r, "id"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScenarioDTO(s))
}

// EvaluateScenario evaluates a preset submission.
// POST /api/scenarios/{id}/evaluate
func (h *Handler) EvaluateScenario(w http.ResponseWriter, r *http.Request) {
	tag := h.resolveLocale(w, r)

	s, err := childcare.FindScenario(chi.URLParam(r, "id"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	h.evaluate(w, r, tag, s.ID, s.Form)
}

func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request, tag language.Tag, scenarioID string, form childcare.FormData) {
	in, err := childcare.ParseForm(form)
	if err != nil {
		var verrs generic.ValidationErrors
		if errors.As(err, &verrs) {
			h.Logger.InfoContext(r.Context(), "submission rejected",
				"fields", verrs.Fields(),
				"locale", tag.String(),
			)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:  "Validation failed",
				Fields: h.Catalog.RenderErrors(tag, verrs),
			})
			return
		}
		if generic.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Invalid submission", err)
			return
		}
		h.Logger.ErrorContext(r.Context(), "parse submission", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error", err)
		return
	}

	res := childcare.Evaluate(in)
	resp := EvaluationResponse{
		EvaluationID: h.newID(),
		ScenarioID:   scenarioID,
		Input:        in.ToFormData(),
		Result:       NewResultDTO(res),
		Report:       h.Catalog.Render(tag, res),
	}

	h.Logger.DebugContext(r.Context(), "evaluation complete",
		"evaluation_id", resp.EvaluationID,
		"scenario", scenarioID,
		"eligible", res.IsEligible,
		"advice", len(res.Advice),
		"locale", tag.String(),
	)
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// META HANDLERS
// =============================================================================

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListLocales returns the supported locales.
// GET /api/locales
func (h *Handler) ListLocales(w http.ResponseWriter, r *http.Request) {
	tags := h.Catalog.Supported()
	dtos := make([]LocaleDTO, len(tags))
	for i, tag := range tags {
		dtos[i] = LocaleDTO{Tag: tag.String(), Default: tag == h.DefaultLocale}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// HELPERS
// =============================================================================

// resolveLocale picks the response locale: query param (persisted as a
// cookie), then cookie, then Accept-Language, then the server default.
func (h *Handler) resolveLocale(w http.ResponseWriter, r *http.Request) language.Tag {
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, ok := h.Catalog.ParseTag(v); ok {
			http.SetCookie(w, &http.Cookie{
				Name:     LangCookieName,
				Value:    tag.String(),
				Path:     "/",
				MaxAge:   int((365 * 24 * time.Hour).Seconds()),
				SameSite: http.SameSiteLaxMode,
			})
			return tag
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := h.Catalog.ParseTag(cookie.Value); ok {
			return tag
		}
	}
	if tag, ok := h.Catalog.MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return tag
	}
	return h.DefaultLocale
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeLookupError maps a failed preset lookup to 404, anything else to 500.
func writeLookupError(w http.ResponseWriter, err error) {
	if generic.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "Scenario not found", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal error", err)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
