package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/uoyweek/internal/academic"
	"github.com/zapponejosh/uoyweek/internal/config"
	"github.com/zapponejosh/uoyweek/internal/database"
	"github.com/zapponejosh/uoyweek/internal/ical"
	"github.com/zapponejosh/uoyweek/internal/logger"
	"github.com/zapponejosh/uoyweek/internal/termdates"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	table   *academic.Table
	db      *database.DB // nil unless the table is served from SQLite
	cfg     *config.Config
	metrics *Metrics
	now     func() time.Time
}

// NewHandlers creates a new Handlers instance. db may be nil.
func NewHandlers(table *academic.Table, db *database.DB, cfg *config.Config, metrics *Metrics) *Handlers {
	return &Handlers{
		table:   table,
		db:      db,
		cfg:     cfg,
		metrics: metrics,
		now:     time.Now,
	}
}

// WeekResponse is the label for one date.
type WeekResponse struct {
	Date        string `json:"date"`
	Label       string `json:"label"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Start       string `json:"start"`
	Week        int    `json:"week,omitempty"` // terms only
	Description string `json:"description"`
}

// PeriodResponse is one entry of the period table.
type PeriodResponse struct {
	Kind  string   `json:"kind"`
	Name  string   `json:"name"`
	Start string   `json:"start"`
	Weeks []string `json:"weeks,omitempty"`
}

// TermDatesResponse is the upcoming-terms report.
type TermDatesResponse struct {
	Autumn  string `json:"autumn"`
	Spring  string `json:"spring"`
	Summer  string `json:"summer"`
	Current string `json:"current,omitempty"`
	Command string `json:"command"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Health(r.Context()); err != nil {
			logger.Warn(r.Context(), "health check failed", slog.Any("error", err))
			WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeUnhealthy)
			return
		}
	}

	WriteSuccess(w, map[string]any{
		"status":  "healthy",
		"periods": h.table.Len(),
	})
}

// GetTodayWeek handles GET /api/v1/week/today
func (h *Handlers) GetTodayWeek(w http.ResponseWriter, r *http.Request) {
	h.writeWeek(w, r, h.cfg.Today(h.now()))
}

// GetDateWeek handles GET /api/v1/week/date/{date}
func (h *Handlers) GetDateWeek(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := academic.ParseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	h.writeWeek(w, r, date)
}

func (h *Handlers) writeWeek(w http.ResponseWriter, r *http.Request, date time.Time) {
	opts, err := formatOptions(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	resp, err := h.week(date, opts)
	if err != nil {
		h.metrics.observeError(err)
		h.writeLabelError(w, r, date, err)
		return
	}

	WriteSuccess(w, resp)
}

func (h *Handlers) week(date time.Time, opts academic.FormatOptions) (*WeekResponse, error) {
	period, err := h.table.Classify(date)
	if err != nil {
		return nil, err
	}
	label, err := period.Format(date, opts)
	if err != nil {
		return nil, err
	}
	h.metrics.observeLabel(period.Kind)

	resp := &WeekResponse{
		Date:        academic.FormatDate(date),
		Label:       label,
		Kind:        period.Kind.String(),
		Name:        period.Name,
		Start:       academic.FormatDate(period.Start),
		Description: ical.Summary(period),
	}

	switch period.Kind {
	case academic.KindTerm:
		resp.Week = period.WeekNumber(date)
		resp.Description = fmt.Sprintf("%s week of %s", humanize.Ordinal(resp.Week), ical.Summary(period))
	case academic.KindSemester:
		// Format has already checked the week name exists.
		name, _ := period.WeekName(date)
		resp.Description = fmt.Sprintf("%s of the %s", name, ical.Summary(period))
	}
	return resp, nil
}

func (h *Handlers) writeLabelError(w http.ResponseWriter, r *http.Request, date time.Time, err error) {
	switch {
	case academic.IsNoPeriodFound(err):
		WriteNotFound(w, err.Error(), CodeNoPeriod)
	case academic.IsOutOfRange(err):
		logger.Warn(r.Context(), "semester week names exhausted",
			slog.String("date", academic.FormatDate(date)),
			slog.Any("error", err))
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), CodeWeekOutOfRange)
	default:
		logger.Error(r.Context(), "failed to label date", err,
			slog.String("date", academic.FormatDate(date)))
		WriteInternalError(w, "Failed to label date")
	}
}

// ListPeriods handles GET /api/v1/periods?kind=&name=
func (h *Handlers) ListPeriods(w http.ResponseWriter, r *http.Request) {
	var kind academic.Kind
	if k := r.URL.Query().Get("kind"); k != "" {
		parsed, err := academic.ParseKind(k)
		if err != nil {
			WriteBadRequest(w, err.Error())
			return
		}
		kind = parsed
	}

	periods := h.table.Select(kind, r.URL.Query().Get("name"))
	resp := make([]PeriodResponse, 0, len(periods))
	for _, p := range periods {
		resp = append(resp, PeriodResponse{
			Kind:  p.Kind.String(),
			Name:  p.Name,
			Start: academic.FormatDate(p.Start),
			Weeks: p.Weeks(),
		})
	}

	WriteSuccess(w, map[string]any{
		"periods": resp,
		"count":   len(resp),
	})
}

// GetTermDates handles GET /api/v1/termdates
func (h *Handlers) GetTermDates(w http.ResponseWriter, r *http.Request) {
	report, err := termdates.Upcoming(h.table, h.cfg.Today(h.now()))
	switch {
	case errors.Is(err, termdates.ErrNoUpcomingTerm):
		WriteNotFound(w, err.Error(), CodeNoUpcomingTerm)
		return
	case errors.Is(err, termdates.ErrUnexpectedTerm):
		logger.Warn(r.Context(), "table has a term outside the report", slog.Any("error", err))
		WriteError(w, http.StatusUnprocessableEntity, err.Error(), CodeUnexpectedTerm)
		return
	case err != nil:
		logger.Error(r.Context(), "failed to build term dates", err)
		WriteInternalError(w, "Failed to build term dates")
		return
	}

	WriteSuccess(w, TermDatesResponse{
		Autumn:  academic.FormatDate(report.Autumn.Start),
		Spring:  academic.FormatDate(report.Spring.Start),
		Summer:  academic.FormatDate(report.Summer.Start),
		Current: report.Current,
		Command: report.Command(h.cfg.TermDatesPrefix),
	})
}

// GetCalendar handles GET /api/v1/calendar.ics
func (h *Handlers) GetCalendar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	if err := ical.Write(w, h.table, "Academic periods", h.now()); err != nil {
		logger.Error(r.Context(), "failed to write calendar", err)
	}
}

// formatOptions reads the short and lower query flags.
func formatOptions(r *http.Request) (academic.FormatOptions, error) {
	var opts academic.FormatOptions
	for name, dst := range map[string]*bool{"short": &opts.Short, "lower": &opts.Lower} {
		v := r.URL.Query().Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid %s flag %q", name, v)
		}
		*dst = b
	}
	return opts, nil
}
