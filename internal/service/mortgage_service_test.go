package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
	"github.com/zell311-rgb/Emergent-Personal/internal/service"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

func TestAddPrincipalPayment(t *testing.T) {
	ctx := context.Background()
	t.Run("saved", func(t *testing.T) {
		mock := &mortgageEventsRepoMock{}
		ms := service.NewMortgageService(mock)
		ev, err := ms.AddPrincipalPayment(ctx, &service.PrincipalPaymentRequest{
			Day:    "2026-04-01",
			Amount: 500,
			Note:   "extra",
		})
		assert.NoError(t, err)
		assert.Equal(t, entity.MortgageKindPrincipalPayment, ev.Kind)
		assert.Equal(t, 500.0, ev.Amount)
		assert.Len(t, mock.created, 1)
	})
	t.Run("boundaries accepted", func(t *testing.T) {
		ms := service.NewMortgageService(&mortgageEventsRepoMock{})
		for _, v := range []float64{1, 1_000_000} {
			_, err := ms.AddPrincipalPayment(ctx, &service.PrincipalPaymentRequest{Day: "2026-04-01", Amount: v})
			assert.NoError(t, err)
		}
	})
	t.Run("out of range rejected", func(t *testing.T) {
		mock := &mortgageEventsRepoMock{}
		ms := service.NewMortgageService(mock)
		for _, v := range []float64{0, 0.5, 1_000_001} {
			_, err := ms.AddPrincipalPayment(ctx, &service.PrincipalPaymentRequest{Day: "2026-04-01", Amount: v})
			assert.EqualError(t, err, "amount out of range")
		}
		assert.Empty(t, mock.created)
	})
}

func TestAddBalanceCheck(t *testing.T) {
	ctx := context.Background()
	t.Run("saved", func(t *testing.T) {
		ms := service.NewMortgageService(&mortgageEventsRepoMock{})
		ev, err := ms.AddBalanceCheck(ctx, &service.BalanceCheckRequest{
			Day:              "2026-04-15",
			PrincipalBalance: 312000,
		})
		assert.NoError(t, err)
		assert.Equal(t, entity.MortgageKindBalanceCheck, ev.Kind)
	})
	t.Run("out of range rejected", func(t *testing.T) {
		ms := service.NewMortgageService(&mortgageEventsRepoMock{})
		for _, v := range []float64{0, 10_000_001} {
			_, err := ms.AddBalanceCheck(ctx, &service.BalanceCheckRequest{Day: "2026-04-15", PrincipalBalance: v})
			assert.EqualError(t, err, "principal_balance out of range")
		}
	})
	t.Run("rejects malformed day", func(t *testing.T) {
		ms := service.NewMortgageService(&mortgageEventsRepoMock{})
		_, err := ms.AddBalanceCheck(ctx, &service.BalanceCheckRequest{Day: "soon", PrincipalBalance: 312000})
		var dateErr *errorvalues.InvalidDateError
		assert.ErrorAs(t, err, &dateErr)
	})
}

func TestMortgageSummary(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, time.April, 20, 15, 0, 0, 0, time.UTC)
	t.Run("with balance and payments", func(t *testing.T) {
		balance := 312000.0
		mock := &mortgageEventsRepoMock{
			latest: &entity.MortgageEvent{Day: "2026-04-15", Kind: entity.MortgageKindBalanceCheck, Amount: balance},
			sumsByFrom: map[string]float64{
				"2026-01-01": 1500,
				"2026-04-01": 500,
			},
		}
		ms := service.NewMortgageService(mock)
		summary, err := ms.Summary(ctx, today)
		assert.NoError(t, err)
		assert.Equal(t, 330000.0, summary.MortgageStartPrincipal)
		assert.Equal(t, 299999.0, summary.MortgageTargetPrincipal)
		assert.Equal(t, balance, *summary.LatestPrincipalBalance)
		assert.Equal(t, 1500.0, summary.PrincipalPaidExtraYTD)
		assert.Equal(t, 500.0, summary.PrincipalPaidExtraMonth)
		assert.Equal(t, 30001.0, summary.Progress.TargetDelta)
		assert.Equal(t, 1500.0, summary.Progress.PaidExtraYTD)
	})
	t.Run("no events yet", func(t *testing.T) {
		ms := service.NewMortgageService(&mortgageEventsRepoMock{})
		summary, err := ms.Summary(ctx, today)
		assert.NoError(t, err)
		assert.Nil(t, summary.LatestPrincipalBalance)
		assert.Zero(t, summary.PrincipalPaidExtraYTD)
		assert.Zero(t, summary.PrincipalPaidExtraMonth)
	})
	t.Run("repo error", func(t *testing.T) {
		ms := service.NewMortgageService(&mortgageEventsRepoMock{state: stateDBError})
		_, err := ms.Summary(ctx, today)
		assert.Error(t, err)
	})
}
