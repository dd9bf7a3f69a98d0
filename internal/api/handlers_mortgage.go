package api

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/zell311-rgb/Emergent-Personal/internal/service"
	"github.com/zell311-rgb/Emergent-Personal/pkg/httputil"
)

func (s *Server) AddPrincipalPayment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.PrincipalPaymentRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("principal payment error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := handlerContext()
	defer cancel()
	ev, err := s.mortgageService.AddPrincipalPayment(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "saving principal payment", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ev)
	logger.Info("principal payment saved")
}

func (s *Server) AddBalanceCheck(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.BalanceCheckRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("balance check error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := handlerContext()
	defer cancel()
	ev, err := s.mortgageService.AddBalanceCheck(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "saving balance check", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ev)
	logger.Info("balance check saved")
}

func (s *Server) ListMortgageEvents(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	ctx, cancel := handlerContext()
	defer cancel()
	events, err := s.mortgageService.ListEvents(ctx, start, end)
	if err != nil {
		writeServiceError(w, logger, "listing mortgage events", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, events)
	logger.Info("mortgage events provided")
}

func (s *Server) GetMortgageSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := handlerContext()
	defer cancel()
	summary, err := s.mortgageService.Summary(ctx, time.Now())
	if err != nil {
		writeServiceError(w, logger, "building mortgage summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("mortgage summary provided")
}
