package service

import (
	"context"
	"errors"
	"log"

	"github.com/zell311-rgb/Emergent-Personal/internal/repository"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type CheckinService struct {
	repo repository.CheckinsRepositoryI
}

func NewCheckinService(checkinsRepo repository.CheckinsRepositoryI) *CheckinService {
	if checkinsRepo == nil {
		log.Fatal("provided nil checkinsRepo")
	}
	return &CheckinService{
		repo: checkinsRepo,
	}
}

func (cs *CheckinService) Upsert(ctx context.Context, req *CheckInUpsertRequest) (*entity.CheckIn, error) {
	d, err := ParseDay(req.Day)
	if err != nil {
		return nil, err
	}
	checkin, err := cs.repo.Upsert(ctx, &entity.CheckIn{
		Day:           FormatDay(d),
		Wakeup5AM:     req.Wakeup5AM,
		Workout:       req.Workout,
		VideoCaptured: req.VideoCaptured,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	return checkin, nil
}

func (cs *CheckinService) ListRange(ctx context.Context, start, end string) ([]entity.CheckIn, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	checkins, err := cs.repo.GetByDateRange(ctx, FormatDay(from), FormatDay(to))
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	return checkins, nil
}
