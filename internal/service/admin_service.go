package service

import (
	"context"
	"errors"
	"log"

	"github.com/zell311-rgb/Emergent-Personal/internal/repository"
)

type AdminService struct {
	checkins repository.CheckinsRepositoryI
	metrics  repository.MetricsRepositoryI
	photos   repository.PhotosRepositoryI
	events   repository.MortgageEventsRepositoryI
	gifts    repository.GiftsRepositoryI
	trip     repository.TripRepositoryI
}

func NewAdminService(
	checkinsRepo repository.CheckinsRepositoryI,
	metricsRepo repository.MetricsRepositoryI,
	photosRepo repository.PhotosRepositoryI,
	eventsRepo repository.MortgageEventsRepositoryI,
	giftsRepo repository.GiftsRepositoryI,
	tripRepo repository.TripRepositoryI,
) *AdminService {
	if checkinsRepo == nil || metricsRepo == nil || photosRepo == nil || eventsRepo == nil || giftsRepo == nil || tripRepo == nil {
		log.Fatal("on admin service provided nil repositories")
	}
	return &AdminService{
		checkins: checkinsRepo,
		metrics:  metricsRepo,
		photos:   photosRepo,
		events:   eventsRepo,
		gifts:    giftsRepo,
		trip:     tripRepo,
	}
}

// Reset wipes tracked data and restores the trip singleton to its defaults.
// Settings survive, and uploaded photo files stay on disk even though their
// database entries are gone.
func (as *AdminService) Reset(ctx context.Context) (*ResetReport, error) {
	deleted := make(map[string]int64, 6)

	n, err := as.checkins.DeleteAll(ctx)
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	deleted["checkins"] = n

	n, err = as.metrics.DeleteAll(ctx)
	if err != nil {
		return nil, errors.New("metrics repository error: " + err.Error())
	}
	deleted["metrics"] = n

	n, err = as.photos.DeleteAll(ctx)
	if err != nil {
		return nil, errors.New("photos repository error: " + err.Error())
	}
	deleted["photos"] = n

	n, err = as.events.DeleteAll(ctx)
	if err != nil {
		return nil, errors.New("mortgage events repository error: " + err.Error())
	}
	deleted["mortgage_events"] = n

	n, err = as.gifts.DeleteAll(ctx)
	if err != nil {
		return nil, errors.New("gifts repository error: " + err.Error())
	}
	deleted["gifts"] = n

	n, err = as.trip.DeleteAllHistory(ctx)
	if err != nil {
		return nil, errors.New("trip repository error: " + err.Error())
	}
	deleted["trip_history"] = n

	if err := as.trip.ResetDefault(ctx); err != nil {
		return nil, errors.New("trip repository error: " + err.Error())
	}

	return &ResetReport{
		OK:      true,
		Deleted: deleted,
		Note:    "Settings kept. Photo files on disk not deleted (DB entries cleared).",
	}, nil
}
