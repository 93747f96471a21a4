package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/report-atlas/pkg/adapters"
	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/services/dashboard"
	"github.com/de-tools/report-atlas/pkg/services/opportunity"
	reportsvc "github.com/de-tools/report-atlas/pkg/services/report"
	"github.com/de-tools/report-atlas/pkg/store/reports"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	reports   reports.Store
	records   opportunity.Provider
	evaluator *reportsvc.Evaluator
	dashboard *dashboard.Service
}

func NewHandler(
	reportStore reports.Store,
	records opportunity.Provider,
	evaluator *reportsvc.Evaluator,
	dashboardService *dashboard.Service,
) *Handler {
	return &Handler{
		reports:   reportStore,
		records:   records,
		evaluator: evaluator,
		dashboard: dashboardService,
	}
}

func (h *Handler) ListFields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, adapters.MapDomainCatalogToApi(domain.DefaultCatalog()))
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	configs, err := h.reports.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list reports")
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	response := make([]api.ReportConfig, 0, len(configs))
	for _, cfg := range configs {
		response = append(response, adapters.MapDomainReportConfigToApi(cfg))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	cfg, err := h.reports.Get(ctx, id)
	if err != nil {
		h.reportError(w, r, err, id)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainReportConfigToApi(cfg))
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	cfg, ok := decodeReportConfig(w, r)
	if !ok {
		return
	}
	cfg.ID = ""

	saved, err := h.reports.Save(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to save report")
		http.Error(w, "failed to save report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusCreated, adapters.MapDomainReportConfigToApi(saved))
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	cfg, ok := decodeReportConfig(w, r)
	if !ok {
		return
	}
	if _, err := h.reports.Get(ctx, id); err != nil {
		h.reportError(w, r, err, id)
		return
	}
	cfg.ID = id

	saved, err := h.reports.Save(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Str("report_id", id).Msg("failed to save report")
		http.Error(w, "failed to save report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainReportConfigToApi(saved))
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.reports.Delete(r.Context(), id); err != nil {
		h.reportError(w, r, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PreviewReport evaluates the posted configuration without saving it.
func (h *Handler) PreviewReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cfg, ok := decodeReportConfig(w, r)
	if !ok {
		return
	}
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}

	cfg = cfg.WithDefaults()
	series := h.evaluator.Evaluate(ctx, records, cfg)
	writeJSON(w, r, http.StatusOK, adapters.MapDomainReportResultToApi(domain.ReportResult{Report: cfg, Series: series}))
}

func (h *Handler) GetReportSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	cfg, err := h.reports.Get(ctx, id)
	if err != nil {
		h.reportError(w, r, err, id)
		return
	}
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}

	series := h.evaluator.Evaluate(ctx, records, cfg)
	writeJSON(w, r, http.StatusOK, adapters.MapDomainReportResultToApi(domain.ReportResult{Report: cfg, Series: series}))
}

// ListReportSeries evaluates every saved report against one record snapshot.
func (h *Handler) ListReportSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	configs, err := h.reports.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list reports")
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}

	results, err := h.evaluator.EvaluateAll(ctx, records, configs)
	if err != nil {
		logger.Error().Err(err).Msg("failed to evaluate reports")
		http.Error(w, "failed to evaluate reports", http.StatusInternalServerError)
		return
	}

	response := make([]api.ReportSeries, 0, len(results))
	for _, result := range results {
		response = append(response, adapters.MapDomainReportResultToApi(result))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	records, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapDomainDashboardToApi(h.dashboard.Build(r.Context(), records)))
}

func (h *Handler) loadRecords(w http.ResponseWriter, r *http.Request) ([]domain.Opportunity, bool) {
	records, err := h.records.ListOpportunities(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to load opportunities")
		http.Error(w, "failed to load opportunities", http.StatusInternalServerError)
		return nil, false
	}
	return records, true
}

func (h *Handler) reportError(w http.ResponseWriter, r *http.Request, err error, id string) {
	if errors.Is(err, reports.ErrReportNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Str("report_id", id).Msg("failed to access report")
	http.Error(w, "failed to access report", http.StatusInternalServerError)
}

func decodeReportConfig(w http.ResponseWriter, r *http.Request) (domain.ReportConfig, bool) {
	var body api.ReportConfig
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid report config: "+err.Error(), http.StatusBadRequest)
		return domain.ReportConfig{}, false
	}
	cfg, err := adapters.MapApiReportConfigToDomain(body)
	if err != nil {
		http.Error(w, "invalid report config: "+err.Error(), http.StatusBadRequest)
		return domain.ReportConfig{}, false
	}
	return cfg, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
