package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/zapponejosh/prophecy-cycles/internal/calendar"
	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
	"github.com/zapponejosh/prophecy-cycles/internal/comparison"
	"github.com/zapponejosh/prophecy-cycles/internal/config"
	"github.com/zapponejosh/prophecy-cycles/internal/logger"
	"github.com/zapponejosh/prophecy-cycles/internal/prophecy"
	"github.com/zapponejosh/prophecy-cycles/internal/timeline"
)

// maxBodyBytes caps POST bodies.
const maxBodyBytes = 1 << 20

var requestValidate = validator.New(validator.WithRequiredStructEnabled())

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	svc    *prophecy.Service
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(svc *prophecy.Service, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		svc:    svc,
		cfg:    cfg,
		logger: logger,
	}
}

// =============================================================================
// Response Types
// =============================================================================

// YearCycles is the response for year lookups.
type YearCycles struct {
	Year   int             `json:"year"`
	Label  string          `json:"label"`
	Cycles []catalog.Cycle `json:"cycles"`
}

// TimelineView is a projection plus the caller's zoom level.
type TimelineView struct {
	timeline.Projection
	Zoom int `json:"zoom"`
}

// ComparisonView flattens a comparison and flags an empty selection.
type ComparisonView struct {
	prophecy.Comparison
	Empty bool `json:"empty"`
}

// PositionsRequest is the body of POST /api/v1/timeline/positions.
type PositionsRequest struct {
	Events []catalog.TimelineEvent `json:"events" validate:"dive"`
}

// =============================================================================
// Health
// =============================================================================

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]any{
		"status": "healthy",
		"env":    h.cfg.Env,
		"cycles": len(h.svc.AllCycles()),
	})
}

// =============================================================================
// Cycles
// =============================================================================

// ListCycles handles GET /api/v1/cycles[?tradition=X&tradition=Y]
func (h *Handlers) ListCycles(w http.ResponseWriter, r *http.Request) {
	selected, filtered := traditionParams(r)
	if !filtered {
		WriteSuccess(w, h.svc.AllCycles())
		return
	}
	WriteSuccess(w, h.svc.FilterCyclesByTraditions(selected))
}

// GetCycle handles GET /api/v1/cycles/{id}
func (h *Handlers) GetCycle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, ok := h.svc.FindCycle(id)
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Cycle %q not found", id))
		return
	}
	WriteSuccess(w, c)
}

// GetCyclesAtYear handles GET /api/v1/cycles/year/{year}
// The year accepts signed integers or era suffixes ("2100BCE", "33 CE").
func (h *Handlers) GetCyclesAtYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	WriteSuccess(w, YearCycles{
		Year:   year,
		Label:  calendar.FormatYear(year),
		Cycles: h.svc.FindCyclesAtYear(year),
	})
}

// =============================================================================
// Traditions
// =============================================================================

// ListTraditions handles GET /api/v1/traditions
func (h *Handlers) ListTraditions(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.svc.AllTraditions())
}

// GetTradition handles GET /api/v1/traditions/{id}
func (h *Handlers) GetTradition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, ok := h.svc.FindTradition(id)
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Tradition %q not found", id))
		return
	}
	WriteSuccess(w, t)
}

// =============================================================================
// Timeline
// =============================================================================

// GetTimeline handles GET /api/v1/timeline[?zoom=N&step=K]
func (h *Handlers) GetTimeline(w http.ResponseWriter, r *http.Request) {
	zoom, ok := h.zoomParam(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, newTimelineView(h.svc.Timeline(), zoom))
}

// ComputePositions handles POST /api/v1/timeline/positions
func (h *Handlers) ComputePositions(w http.ResponseWriter, r *http.Request) {
	zoom, ok := h.zoomParam(w, r)
	if !ok {
		return
	}

	var req PositionsRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.badRequest(w, r, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := requestValidate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			h.badRequest(w, r, fmt.Sprintf("Invalid event: %s failed %s", verrs[0].Namespace(), verrs[0].Tag()))
			return
		}
		h.badRequest(w, r, err.Error())
		return
	}

	logger.Debug(r.Context(), "projecting caller events", slog.Int("events", len(req.Events)))
	WriteSuccess(w, newTimelineView(h.svc.ComputeTimelinePositions(req.Events), zoom))
}

// GetRelatedCycles handles GET /api/v1/timeline/related/{year}
// It resolves the first catalog event in that year and returns the cycles
// bounded by it. 404 when no event falls in the year.
func (h *Handlers) GetRelatedCycles(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	p := h.svc.Timeline()
	for i, pt := range p.Points {
		if pt.Event.Year != year {
			continue
		}
		related := p.RelatedCycles(i)
		if related == nil {
			related = []catalog.Cycle{}
		}
		WriteSuccess(w, map[string]any{
			"event":  pt.Event,
			"label":  calendar.FormatYear(year),
			"cycles": related,
		})
		return
	}

	WriteNotFound(w, fmt.Sprintf("No timeline event in %s", calendar.FormatYear(year)))
}

// =============================================================================
// Convergence & Comparison
// =============================================================================

// GetConvergence handles GET /api/v1/convergence
func (h *Handlers) GetConvergence(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.svc.ConvergenceSummary())
}

// GetComparison handles GET /api/v1/comparison[?tradition=X&tradition=Y]
// Without a tradition parameter the default selection is used; an empty
// tradition parameter selects nothing.
func (h *Handlers) GetComparison(w http.ResponseWriter, r *http.Request) {
	selected, filtered := traditionParams(r)
	if !filtered {
		selected = comparison.DefaultSelection
	}
	comparisonSelections.Observe(float64(len(selected)))

	view := h.svc.Compare(selected)
	if view.Empty() {
		logger.Debug(r.Context(), "comparison selection is empty",
			slog.Any("selected", selected))
	}

	WriteSuccess(w, ComparisonView{Comparison: view, Empty: view.Empty()})
}

// =============================================================================
// Fallbacks
// =============================================================================

// NotFound handles unmatched routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteNotFound(w, fmt.Sprintf("No route for %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowed handles known routes called with the wrong method.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteMethodNotAllowed(w)
}

// =============================================================================
// Helper Methods
// =============================================================================

// traditionParams returns the non-empty tradition query values and whether
// the parameter was present at all.
func traditionParams(r *http.Request) ([]string, bool) {
	raw, present := r.URL.Query()["tradition"]
	if !present {
		return nil, false
	}

	selected := make([]string, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			selected = append(selected, v)
		}
	}
	return selected, true
}

func (h *Handlers) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "year")

	year, err := calendar.ParseYear(raw)
	if err != nil {
		h.badRequest(w, r, fmt.Sprintf("Invalid year %q. Use 538, -2100, 2100BCE or 33CE", raw))
		return 0, false
	}
	return year, true
}

// zoomParam reads ?zoom=N and ?step=K. The level is clamped to the supported
// range, then moved K steps of timeline.ZoomStep (negative zooms out).
func (h *Handlers) zoomParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	q := r.URL.Query()

	zoom := timeline.DefaultZoom
	if raw := q.Get("zoom"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.badRequest(w, r, fmt.Sprintf("Invalid zoom %q", raw))
			return 0, false
		}
		zoom = v
	}

	step := 0
	if raw := q.Get("step"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			h.badRequest(w, r, fmt.Sprintf("Invalid zoom step %q", raw))
			return 0, false
		}
		step = v
	}

	return timeline.StepZoom(zoom, step), true
}

// badRequest logs the rejection and writes a 400.
func (h *Handlers) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.logger.Warn("rejected request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("reason", msg),
		slog.String("request_id", logger.RequestID(r.Context())),
	)
	WriteBadRequest(w, msg)
}

func newTimelineView(p timeline.Projection, zoom int) TimelineView {
	if p.Points == nil {
		p.Points = []timeline.Point{}
	}
	return TimelineView{Projection: p, Zoom: zoom}
}
