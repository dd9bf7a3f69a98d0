package api

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/zell311-rgb/Emergent-Personal/internal/service"
	"github.com/zell311-rgb/Emergent-Personal/pkg/httputil"
)

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := handlerContext()
	defer cancel()
	settings, err := s.settingsService.Get(ctx)
	if err != nil {
		writeServiceError(w, logger, "reading settings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings provided")
}

func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.SettingsUpdateRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("settings update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := handlerContext()
	defer cancel()
	settings, err := s.settingsService.Update(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "updating settings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings updated")
}

func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := handlerContext()
	defer cancel()
	summary, err := s.summaryService.BuildSummary(ctx, time.Now())
	if err != nil {
		writeServiceError(w, logger, "building summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("summary provided")
}

func (s *Server) GetWeeklyReview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	anchor := time.Now()
	if day := r.URL.Query().Get("anchor_day"); day != "" {
		parsed, err := service.ParseDay(day)
		if err != nil {
			logger.Error("weekly review error: invalid anchor day")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		anchor = parsed
	}
	ctx, cancel := handlerContext()
	defer cancel()
	review, err := s.summaryService.WeeklyReview(ctx, anchor)
	if err != nil {
		writeServiceError(w, logger, "building weekly review", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, review)
	logger.Info("weekly review provided")
}
