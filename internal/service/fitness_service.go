package service

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
	"github.com/zell311-rgb/Emergent-Personal/internal/repository"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

const maxPhotoBytes = 10 * 1024 * 1024

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type FitnessService struct {
	metrics repository.MetricsRepositoryI
	photos  repository.PhotosRepositoryI
	store   FileStore
}

func NewFitnessService(metricsRepo repository.MetricsRepositoryI, photosRepo repository.PhotosRepositoryI, store FileStore) *FitnessService {
	if metricsRepo == nil || photosRepo == nil || store == nil {
		log.Fatal("on fitness service provided nil dependencies")
	}
	return &FitnessService{
		metrics: metricsRepo,
		photos:  photosRepo,
		store:   store,
	}
}

func (fs *FitnessService) addMetric(ctx context.Context, day string, kind string, value float64) (*entity.MetricEntry, error) {
	d, err := ParseDay(day)
	if err != nil {
		return nil, err
	}
	m := entity.MetricEntry{
		Day:   FormatDay(d),
		Kind:  kind,
		Value: value,
	}
	if err := fs.metrics.Create(ctx, &m); err != nil {
		return nil, errors.New("metrics repository error: " + err.Error())
	}
	return &m, nil
}

func (fs *FitnessService) AddWeight(ctx context.Context, req *WeightEntryRequest) (*entity.MetricEntry, error) {
	if err := checkRange(req.WeightLbs, 80, 400, "weight_lbs"); err != nil {
		return nil, err
	}
	return fs.addMetric(ctx, req.Day, entity.MetricKindWeight, req.WeightLbs)
}

func (fs *FitnessService) AddBodyFat(ctx context.Context, req *BodyFatEntryRequest) (*entity.MetricEntry, error) {
	if err := checkRange(req.BodyFatPct, 3, 70, "body_fat_pct"); err != nil {
		return nil, err
	}
	return fs.addMetric(ctx, req.Day, entity.MetricKindBodyFat, req.BodyFatPct)
}

// AddWaist keeps the deprecated endpoint alive: the value is normalized into a
// body_fat measurement at the write boundary, indistinguishable from one made
// via AddBodyFat.
func (fs *FitnessService) AddWaist(ctx context.Context, req *WaistEntryRequest) (*entity.MetricEntry, error) {
	return fs.AddBodyFat(ctx, &BodyFatEntryRequest{
		Day:        req.Day,
		BodyFatPct: req.WaistIn,
	})
}

func (fs *FitnessService) SavePhoto(ctx context.Context, day, filename string, size int64, file io.Reader) (*entity.PhotoEntry, error) {
	d, err := ParseDay(day)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		return nil, errorvalues.ErrMissingFilename
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedPhotoExts[ext] {
		return nil, errorvalues.ErrUnsupportedFileType
	}
	if size > maxPhotoBytes {
		return nil, errorvalues.ErrFileTooLarge
	}

	// The stored name never contains client input, only the day, a fresh id
	// and the validated extension.
	id := uuid.New()
	safeName := FormatDay(d) + "-" + id.String() + ext
	if err := fs.store.Save(safeName, io.LimitReader(file, maxPhotoBytes)); err != nil {
		return nil, errors.New("saving photo file error: " + err.Error())
	}

	p := entity.PhotoEntry{
		ID:       id,
		Day:      FormatDay(d),
		Filename: safeName,
		URL:      "/api/uploads/" + safeName,
	}
	if err := fs.photos.Create(ctx, &p); err != nil {
		return nil, errors.New("photos repository error: " + err.Error())
	}
	return &p, nil
}

func (fs *FitnessService) Metrics(ctx context.Context, start, end string) (*MetricsView, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	metrics, err := fs.metrics.GetByDateRange(ctx, FormatDay(from), FormatDay(to))
	if err != nil {
		return nil, errors.New("metrics repository error: " + err.Error())
	}
	// Normalize the legacy kind on the way out so clients see one vocabulary.
	for i := range metrics {
		if metrics[i].Kind == entity.MetricKindWaist {
			metrics[i].Kind = entity.MetricKindBodyFat
		}
	}
	photos, err := fs.photos.GetByDateRange(ctx, FormatDay(from), FormatDay(to))
	if err != nil {
		return nil, errors.New("photos repository error: " + err.Error())
	}

	view := MetricsView{
		Metrics: metrics,
		Photos:  photos,
	}
	latestWeight, err := fs.metrics.GetLatestByKinds(ctx, []string{entity.MetricKindWeight})
	if err != nil {
		return nil, errors.New("metrics repository error: " + err.Error())
	}
	if latestWeight != nil {
		view.Latest.WeightLbs = &latestWeight.Value
	}
	latestBodyFat, err := fs.metrics.GetLatestByKinds(ctx, []string{entity.MetricKindBodyFat, entity.MetricKindWaist})
	if err != nil {
		return nil, errors.New("metrics repository error: " + err.Error())
	}
	if latestBodyFat != nil {
		view.Latest.BodyFatPct = &latestBodyFat.Value
	}
	return &view, nil
}
