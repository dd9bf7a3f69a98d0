package api

import (
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/zell311-rgb/Emergent-Personal/internal/service"
	"github.com/zell311-rgb/Emergent-Personal/pkg/httputil"
)

func (s *Server) UpsertCheckin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.CheckInUpsertRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("check-in upsert error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := handlerContext()
	defer cancel()
	checkin, err := s.checkinService.Upsert(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "saving check-in", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, checkin)
	logger.Info("check-in saved")
}

func (s *Server) ListCheckins(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	ctx, cancel := handlerContext()
	defer cancel()
	checkins, err := s.checkinService.ListRange(ctx, start, end)
	if err != nil {
		writeServiceError(w, logger, "listing check-ins", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, checkins)
	logger.Info("check-ins provided")
}
