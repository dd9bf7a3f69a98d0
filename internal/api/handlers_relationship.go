package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	"github.com/zell311-rgb/Emergent-Personal/internal/service"
	"github.com/zell311-rgb/Emergent-Personal/pkg/httputil"
)

const (
	defaultHistoryLimit = 25
	maxHistoryLimit     = 200
)

func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := handlerContext()
	defer cancel()
	trip, err := s.relationshipService.GetTrip(ctx)
	if err != nil {
		writeServiceError(w, logger, "reading trip state", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, trip)
	logger.Info("trip state provided")
}

func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.TripUpdateRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("trip update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := handlerContext()
	defer cancel()
	trip, err := s.relationshipService.UpdateTrip(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "updating trip state", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, trip)
	logger.Info("trip state updated")
}

func (s *Server) GetTripHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = defaultHistoryLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	ctx, cancel := handlerContext()
	defer cancel()
	history, err := s.relationshipService.TripHistory(ctx, limit)
	if err != nil {
		writeServiceError(w, logger, "listing trip history", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, history)
	logger.Info("trip history provided")
}

func (s *Server) AddGift(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.GiftCreateRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("gift entry error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := handlerContext()
	defer cancel()
	gift, err := s.relationshipService.AddGift(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "saving gift entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, gift)
	logger.Info("gift entry saved")
}

func (s *Server) ListGifts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	now := time.Now()
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		year = now.Year()
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		month = int(now.Month())
	}
	ctx, cancel := handlerContext()
	defer cancel()
	gifts, err := s.relationshipService.GiftsForMonth(ctx, year, month)
	if err != nil {
		writeServiceError(w, logger, "listing gifts", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, gifts)
	logger.Info("gifts provided")
}
