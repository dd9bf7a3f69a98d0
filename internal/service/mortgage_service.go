package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/zell311-rgb/Emergent-Personal/internal/repository"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

// Locked plan constants: the paydown goal is fixed, not user-editable.
const (
	MortgageStartPrincipal  = 330000.0
	MortgageTargetPrincipal = 299999.0
)

type MortgageService struct {
	repo repository.MortgageEventsRepositoryI
}

func NewMortgageService(eventsRepo repository.MortgageEventsRepositoryI) *MortgageService {
	if eventsRepo == nil {
		log.Fatal("provided nil mortgageEventsRepo")
	}
	return &MortgageService{
		repo: eventsRepo,
	}
}

func (ms *MortgageService) addEvent(ctx context.Context, day, kind string, amount float64, note string) (*entity.MortgageEvent, error) {
	d, err := ParseDay(day)
	if err != nil {
		return nil, err
	}
	ev := entity.MortgageEvent{
		Day:    FormatDay(d),
		Kind:   kind,
		Amount: amount,
		Note:   note,
	}
	if err := ms.repo.Create(ctx, &ev); err != nil {
		return nil, errors.New("mortgage events repository error: " + err.Error())
	}
	return &ev, nil
}

func (ms *MortgageService) AddPrincipalPayment(ctx context.Context, req *PrincipalPaymentRequest) (*entity.MortgageEvent, error) {
	if err := checkRange(req.Amount, 1, 1_000_000, "amount"); err != nil {
		return nil, err
	}
	return ms.addEvent(ctx, req.Day, entity.MortgageKindPrincipalPayment, req.Amount, req.Note)
}

func (ms *MortgageService) AddBalanceCheck(ctx context.Context, req *BalanceCheckRequest) (*entity.MortgageEvent, error) {
	if err := checkRange(req.PrincipalBalance, 1, 10_000_000, "principal_balance"); err != nil {
		return nil, err
	}
	return ms.addEvent(ctx, req.Day, entity.MortgageKindBalanceCheck, req.PrincipalBalance, req.Note)
}

func (ms *MortgageService) ListEvents(ctx context.Context, start, end string) ([]entity.MortgageEvent, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	events, err := ms.repo.GetByDateRange(ctx, FormatDay(from), FormatDay(to))
	if err != nil {
		return nil, errors.New("mortgage events repository error: " + err.Error())
	}
	return events, nil
}

// Summary is the mortgage rollup: the newest balance check plus extra
// principal paid year-to-date and month-to-date.
func (ms *MortgageService) Summary(ctx context.Context, today time.Time) (*MortgageSummary, error) {
	latestBalance, err := ms.repo.GetLatestByKind(ctx, entity.MortgageKindBalanceCheck)
	if err != nil {
		return nil, errors.New("mortgage events repository error: " + err.Error())
	}

	yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	monthStart, _ := monthBounds(today)

	ytd, err := ms.repo.SumAmountByKindAndRange(ctx, entity.MortgageKindPrincipalPayment, FormatDay(yearStart), FormatDay(today))
	if err != nil {
		return nil, errors.New("mortgage events repository error: " + err.Error())
	}
	month, err := ms.repo.SumAmountByKindAndRange(ctx, entity.MortgageKindPrincipalPayment, FormatDay(monthStart), FormatDay(today))
	if err != nil {
		return nil, errors.New("mortgage events repository error: " + err.Error())
	}

	summary := MortgageSummary{
		MortgageStartPrincipal:  MortgageStartPrincipal,
		MortgageTargetPrincipal: MortgageTargetPrincipal,
		PrincipalPaidExtraYTD:   ytd,
		PrincipalPaidExtraMonth: month,
		Progress: MortgageProgress{
			TargetDelta:  MortgageStartPrincipal - MortgageTargetPrincipal,
			PaidExtraYTD: ytd,
		},
	}
	if latestBalance != nil {
		summary.LatestPrincipalBalance = &latestBalance.Amount
	}
	return &summary, nil
}
