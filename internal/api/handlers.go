package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
	"github.com/zell311-rgb/Emergent-Personal/pkg/httputil"
)

const handlerTimeout = time.Second * 10

// badRequestSentinels are domain rejections that map straight to 400 with
// their own message.
var badRequestSentinels = []error{
	errorvalues.ErrInvalidRange,
	errorvalues.ErrTripDatesOrder,
	errorvalues.ErrEmptyDescription,
	errorvalues.ErrNegativeAmount,
	errorvalues.ErrInvalidMonth,
	errorvalues.ErrMissingFilename,
	errorvalues.ErrUnsupportedFileType,
	errorvalues.ErrFileTooLarge,
}

// writeServiceError maps a service failure onto an HTTP response. Domain
// rejections carry their message to the caller; anything else is an opaque 500.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	var dateErr *errorvalues.InvalidDateError
	var rangeErr *errorvalues.OutOfRangeError
	var validationErr *errorvalues.ValidationError
	switch {
	case errors.As(err, &dateErr), errors.As(err, &rangeErr), errors.As(err, &validationErr):
		logger.Error(action + " error: rejected input: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	for _, sentinel := range badRequestSentinels {
		if errors.Is(err, sentinel) {
			logger.Error(action + " error: rejected input: " + err.Error())
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}
	logger.Error(action+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while "+action, nil)
}

func handlerContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), handlerTimeout)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"app":    AppTitle,
	})
}

func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if r.URL.Query().Get("confirm") != "RESET" {
		logger.Error("reset error: missing confirmation")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.ErrBadConfirm.Error(), nil)
		return
	}
	ctx, cancel := handlerContext()
	defer cancel()
	report, err := s.adminService.Reset(ctx)
	if err != nil {
		writeServiceError(w, logger, "resetting data", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("all tracked data reset")
}
