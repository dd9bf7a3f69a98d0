package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
	"github.com/zell311-rgb/Emergent-Personal/internal/repository"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type SettingsService struct {
	repo repository.SettingsRepositoryI
}

func NewSettingsService(settingsRepo repository.SettingsRepositoryI) *SettingsService {
	if settingsRepo == nil {
		log.Fatal("provided nil settingsRepo")
	}
	return &SettingsService{
		repo: settingsRepo,
	}
}

func (ss *SettingsService) Get(ctx context.Context) (*entity.Settings, error) {
	settings, err := ss.repo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, errorvalues.ErrSettingsMissing) {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	// First access before startup seeding: create the baseline row and retry.
	if err := ss.repo.EnsureDefault(ctx); err != nil {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	settings, err = ss.repo.Get(ctx)
	if err != nil {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return settings, nil
}

func (ss *SettingsService) Update(ctx context.Context, req *SettingsUpdateRequest) (*entity.Settings, error) {
	if err := validate.Struct(*req); err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			reason := "validation error:"
			for _, fieldErr := range validationError {
				reason += " " + fieldErr.Field() + " failed on " + fieldErr.Tag()
			}
			return nil, &errorvalues.ValidationError{Reason: reason}
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}

	day := req.WeeklyReviewDay
	if day == "" {
		day = "Sun"
	}
	err := ss.repo.Update(ctx, &entity.Settings{
		ID:                     entity.DefaultSingletonID,
		SendgridAPIKey:         req.SendgridAPIKey,
		SendgridSenderEmail:    req.SendgridSenderEmail,
		ReminderRecipientEmail: req.ReminderRecipientEmail,
		WeeklyReviewDay:        day,
		WeeklyReviewHourLocal:  req.WeeklyReviewHourLocal,
		MonthlyGiftDay:         req.MonthlyGiftDay,
		EmailEnabled:           req.EmailEnabled,
	})
	if err != nil {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return ss.Get(ctx)
}
