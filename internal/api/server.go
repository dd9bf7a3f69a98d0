package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zell311-rgb/Emergent-Personal/internal/service"
)

// AppTitle is reported by the health endpoint.
const AppTitle = "2026 Accountability Tracker"

type Server struct {
	mx                  *chi.Mux
	checkinService      service.CheckinServiceI
	fitnessService      service.FitnessServiceI
	mortgageService     service.MortgageServiceI
	relationshipService service.RelationshipServiceI
	settingsService     service.SettingsServiceI
	summaryService      service.SummaryServiceI
	adminService        service.AdminServiceI
	uploadsDir          string
}

type ServicesList struct {
	CheckinService      service.CheckinServiceI
	FitnessService      service.FitnessServiceI
	MortgageService     service.MortgageServiceI
	RelationshipService service.RelationshipServiceI
	SettingsService     service.SettingsServiceI
	SummaryService      service.SummaryServiceI
	AdminService        service.AdminServiceI
	UploadsDir          string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                  chi.NewMux(),
		checkinService:      servicesOptions.CheckinService,
		fitnessService:      servicesOptions.FitnessService,
		mortgageService:     servicesOptions.MortgageService,
		relationshipService: servicesOptions.RelationshipService,
		settingsService:     servicesOptions.SettingsService,
		summaryService:      servicesOptions.SummaryService,
		adminService:        servicesOptions.AdminService,
		uploadsDir:          servicesOptions.UploadsDir,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Route("/api", func(r chi.Router) {
		r.Get("/health", s.Health)

		r.Post("/checkins/upsert", s.UpsertCheckin)
		r.Get("/checkins", s.ListCheckins)

		r.Route("/fitness", func(r chi.Router) {
			r.Post("/weight", s.AddWeight)
			r.Post("/body-fat", s.AddBodyFat)
			r.Post("/waist", s.AddWaist)
			r.Post("/photo", s.UploadPhoto)
			r.Get("/metrics", s.GetMetrics)
		})

		r.Route("/mortgage", func(r chi.Router) {
			r.Post("/principal-payment", s.AddPrincipalPayment)
			r.Post("/balance-check", s.AddBalanceCheck)
			r.Get("/events", s.ListMortgageEvents)
			r.Get("/summary", s.GetMortgageSummary)
		})

		r.Route("/relationship", func(r chi.Router) {
			r.Get("/trip", s.GetTrip)
			r.Put("/trip", s.UpdateTrip)
			r.Get("/trip/history", s.GetTripHistory)
			r.Post("/gifts", s.AddGift)
			r.Get("/gifts", s.ListGifts)
		})

		r.Get("/settings", s.GetSettings)
		r.Put("/settings", s.UpdateSettings)

		r.Get("/summary", s.GetSummary)
		r.Get("/review/weekly", s.GetWeeklyReview)

		r.Post("/admin/reset", s.Reset)

		if s.uploadsDir != "" {
			fileServer := http.StripPrefix("/api/uploads/", http.FileServer(http.Dir(s.uploadsDir)))
			r.Get("/uploads/*", fileServer.ServeHTTP)
		}
	})
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:    address,
		Handler: s.mx,
	}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
