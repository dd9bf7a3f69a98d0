// @title 2026 Accountability Tracker API
// @description Single-user accountability tracker: daily check-ins, fitness,
// @description mortgage paydown, relationship actions and weekly reviews
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/zell311-rgb/Emergent-Personal/internal/api"
	"github.com/zell311-rgb/Emergent-Personal/internal/repository"
	"github.com/zell311-rgb/Emergent-Personal/internal/service"
	"github.com/zell311-rgb/Emergent-Personal/pkg/cleanup"
	"github.com/zell311-rgb/Emergent-Personal/pkg/config"
	"github.com/zell311-rgb/Emergent-Personal/pkg/filestore"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	defer cleanup.CleanUp()

	checkinsRepo := repository.NewCheckinsRepo(pool)
	metricsRepo := repository.NewMetricsRepo(pool)
	photosRepo := repository.NewPhotosRepo(pool)
	eventsRepo := repository.NewMortgageEventsRepo(pool)
	giftsRepo := repository.NewGiftsRepo(pool)
	tripRepo := repository.NewTripRepo(pool)
	settingsRepo := repository.NewSettingsRepo(pool)

	// Singleton rows exist from first boot so reads never race their creation.
	startupCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := tripRepo.EnsureDefault(startupCtx); err != nil {
		log.Fatal("ensuring default trip state error: " + err.Error())
	}
	if err := settingsRepo.EnsureDefault(startupCtx); err != nil {
		log.Fatal("ensuring default settings error: " + err.Error())
	}

	uploadsDir := cfg.GetStringDefault("UPLOAD_DIR", "./uploads")
	store, err := filestore.NewDiskStore(uploadsDir)
	if err != nil {
		log.Fatal("creating uploads store error: " + err.Error())
	}

	mortgageService := service.NewMortgageService(eventsRepo)
	serv := api.New(&api.ServicesList{
		CheckinService:      service.NewCheckinService(checkinsRepo),
		FitnessService:      service.NewFitnessService(metricsRepo, photosRepo, store),
		MortgageService:     mortgageService,
		RelationshipService: service.NewRelationshipService(tripRepo, giftsRepo),
		SettingsService:     service.NewSettingsService(settingsRepo),
		SummaryService:      service.NewSummaryService(checkinsRepo, metricsRepo, photosRepo, mortgageService, eventsRepo, giftsRepo, tripRepo),
		AdminService:        service.NewAdminService(checkinsRepo, metricsRepo, photosRepo, eventsRepo, giftsRepo, tripRepo),
		UploadsDir:          store.Dir(),
	})
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
