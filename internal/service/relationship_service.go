package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
	"github.com/zell311-rgb/Emergent-Personal/internal/repository"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type RelationshipService struct {
	trip  repository.TripRepositoryI
	gifts repository.GiftsRepositoryI
}

func NewRelationshipService(tripRepo repository.TripRepositoryI, giftsRepo repository.GiftsRepositoryI) *RelationshipService {
	if tripRepo == nil || giftsRepo == nil {
		log.Fatal("on relationship service provided nil repos")
	}
	return &RelationshipService{
		trip:  tripRepo,
		gifts: giftsRepo,
	}
}

func (rs *RelationshipService) GetTrip(ctx context.Context) (*entity.TripState, error) {
	trip, err := rs.trip.Get(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTripMissing) {
			return nil, err
		}
		return nil, errors.New("trip repository error: " + err.Error())
	}
	return trip, nil
}

func (rs *RelationshipService) UpdateTrip(ctx context.Context, req *TripUpdateRequest) (*entity.TripState, error) {
	// Both dates must parse before any comparison; either failure rejects the
	// whole update with no write and no history entry.
	if req.StartDate != "" {
		if _, err := ParseDay(req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != "" {
		if _, err := ParseDay(req.EndDate); err != nil {
			return nil, err
		}
	}
	if req.StartDate != "" && req.EndDate != "" {
		start, _ := ParseDay(req.StartDate)
		end, _ := ParseDay(req.EndDate)
		if end.Before(start) {
			return nil, errorvalues.ErrTripDatesOrder
		}
	}

	prev, err := rs.trip.Get(ctx)
	if err != nil && !errors.Is(err, errorvalues.ErrTripMissing) {
		return nil, errors.New("trip repository error: " + err.Error())
	}

	err = rs.trip.Update(ctx, &entity.TripState{
		ID:                 entity.DefaultSingletonID,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Dates:              req.Dates,
		AdultsOnly:         req.AdultsOnly,
		LodgingBooked:      req.LodgingBooked,
		ChildcareConfirmed: req.ChildcareConfirmed,
		Notes:              req.Notes,
	})
	if err != nil {
		return nil, errors.New("trip repository error: " + err.Error())
	}

	// Archive the state that was just replaced, never the new one.
	if prev != nil {
		err = rs.trip.AppendHistory(ctx, &entity.TripHistoryEntry{
			TripID:   entity.DefaultSingletonID,
			Snapshot: *prev,
		})
		if err != nil {
			return nil, errors.New("trip repository error: " + err.Error())
		}
	}

	return rs.GetTrip(ctx)
}

func (rs *RelationshipService) TripHistory(ctx context.Context, limit int) ([]entity.TripHistoryEntry, error) {
	history, err := rs.trip.GetHistory(ctx, limit)
	if err != nil {
		return nil, errors.New("trip repository error: " + err.Error())
	}
	return history, nil
}

func (rs *RelationshipService) AddGift(ctx context.Context, req *GiftCreateRequest) (*entity.GiftEntry, error) {
	d, err := ParseDay(req.Day)
	if err != nil {
		return nil, err
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, errorvalues.ErrEmptyDescription
	}
	if req.Amount < 0 {
		return nil, errorvalues.ErrNegativeAmount
	}
	g := entity.GiftEntry{
		Day:         FormatDay(d),
		Description: description,
		Amount:      req.Amount,
	}
	if err := rs.gifts.Create(ctx, &g); err != nil {
		return nil, errors.New("gifts repository error: " + err.Error())
	}
	return &g, nil
}

func (rs *RelationshipService) GiftsForMonth(ctx context.Context, year, month int) ([]entity.GiftEntry, error) {
	if month < 1 || month > 12 {
		return nil, errorvalues.ErrInvalidMonth
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	gifts, err := rs.gifts.GetByDateRange(ctx, FormatDay(start), FormatDay(end))
	if err != nil {
		return nil, errors.New("gifts repository error: " + err.Error())
	}
	return gifts, nil
}
