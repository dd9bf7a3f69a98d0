package api

import (
	"net/http"

	"github.com/bytedance/sonic"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
	"github.com/zell311-rgb/Emergent-Personal/internal/service"
	"github.com/zell311-rgb/Emergent-Personal/pkg/httputil"
)

// multipartMemoryLimit caps how much of an upload is buffered in memory before
// spilling to a temp file.
const multipartMemoryLimit = 32 << 20

func (s *Server) AddWeight(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.WeightEntryRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("weight entry error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := handlerContext()
	defer cancel()
	entry, err := s.fitnessService.AddWeight(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "saving weight entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("weight entry saved")
}

func (s *Server) AddBodyFat(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.BodyFatEntryRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("body fat entry error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := handlerContext()
	defer cancel()
	entry, err := s.fitnessService.AddBodyFat(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "saving body fat entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("body fat entry saved")
}

func (s *Server) AddWaist(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.WaistEntryRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("waist entry error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := handlerContext()
	defer cancel()
	entry, err := s.fitnessService.AddWaist(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "saving waist entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("waist entry saved")
}

func (s *Server) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	err := r.ParseMultipartForm(multipartMemoryLimit)
	if err != nil {
		logger.Error("photo upload error: invalid multipart form")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Error("photo upload error: missing file part")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.ErrMissingFilename.Error(), nil)
		return
	}
	defer file.Close()
	day := r.FormValue("day")
	ctx, cancel := handlerContext()
	defer cancel()
	photo, err := s.fitnessService.SavePhoto(ctx, day, header.Filename, header.Size, file)
	if err != nil {
		writeServiceError(w, logger, "saving photo", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, photo)
	logger.Info("progress photo saved")
}

func (s *Server) GetMetrics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	ctx, cancel := handlerContext()
	defer cancel()
	view, err := s.fitnessService.Metrics(ctx, start, end)
	if err != nil {
		writeServiceError(w, logger, "reading fitness metrics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
	logger.Info("fitness metrics provided")
}
