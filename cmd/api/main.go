package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hr-backend/config"
	_ "go-hr-backend/docs" // Important for Swagger
	v1 "go-hr-backend/internal/delivery/http/v1"
	"go-hr-backend/internal/repository/postgres"
	"go-hr-backend/internal/usecase"
	"go-hr-backend/pkg/database"
	"go-hr-backend/pkg/logger"
	"go-hr-backend/pkg/redis"
)

// @title           HR Backend API
// @version         1.0
// @description     Recruitment backend: companies, candidates, job openings and interview scoring.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting hr backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err)
		}
	}

	// 5. Setup Repositories
	companyRepo := postgres.NewCompanyRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	addressRepo := postgres.NewAddressRepository(dbPool)
	genderRepo := postgres.NewGenderRepository(dbPool)
	technologyRepo := postgres.NewTechnologyRepository(dbPool)
	companyTechRepo := postgres.NewCompanyTechnologyRepository(dbPool)
	candidateTechRepo := postgres.NewCandidateTechnologyRepository(dbPool)
	jobOpeningRepo := postgres.NewJobOpeningRepository(dbPool)
	responsibilityRepo := postgres.NewResponsibilityRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	weightRepo := postgres.NewJobInterviewWeightRepository(dbPool)
	reportRepo := postgres.NewReportRepository(dbPool)

	// 6. Setup UseCases (children first, then the aggregates that cascade
	// into them)
	addressUC := usecase.NewAddressUsecase(addressRepo)
	companyTechUC := usecase.NewCompanyTechnologyUsecase(companyTechRepo)
	candidateTechUC := usecase.NewCandidateTechnologyUsecase(candidateTechRepo)
	responsibilityUC := usecase.NewResponsibilityUsecase(responsibilityRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo, addressUC, companyTechUC)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, addressUC, candidateTechUC)
	genderUC := usecase.NewGenderUsecase(genderRepo)
	technologyUC := usecase.NewTechnologyUsecase(technologyRepo)
	jobOpeningUC := usecase.NewJobOpeningUsecase(jobOpeningRepo, responsibilityUC)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo)
	weightUC := usecase.NewJobInterviewWeightUsecase(weightRepo)
	reportUC := usecase.NewReportUsecase(reportRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CompanyUC:             companyUC,
		CandidateUC:           candidateUC,
		AddressUC:             addressUC,
		GenderUC:              genderUC,
		TechnologyUC:          technologyUC,
		CompanyTechnologyUC:   companyTechUC,
		CandidateTechnologyUC: candidateTechUC,
		JobOpeningUC:          jobOpeningUC,
		ResponsibilityUC:      responsibilityUC,
		InterviewUC:           interviewUC,
		JobInterviewWeightUC:  weightUC,
		ReportUC:              reportUC,
		Config:                cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
