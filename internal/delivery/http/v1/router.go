package v1

import (
	"net/http"
	"time"

	"go-hr-backend/config"
	"go-hr-backend/internal/delivery/http/middleware"
	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CompanyUC             domain.CompanyUsecase
	CandidateUC           domain.CandidateUsecase
	AddressUC             domain.AddressUsecase
	GenderUC              domain.GenderUsecase
	TechnologyUC          domain.TechnologyUsecase
	CompanyTechnologyUC   domain.CompanyTechnologyUsecase
	CandidateTechnologyUC domain.CandidateTechnologyUsecase
	JobOpeningUC          domain.JobOpeningUsecase
	ResponsibilityUC      domain.ResponsibilityUsecase
	InterviewUC           domain.InterviewUsecase
	JobInterviewWeightUC  domain.JobInterviewWeightUsecase
	ReportUC              domain.ReportUsecase
	Config                *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewCompanyHandler(api, deps.CompanyUC)
	NewCandidateHandler(api, deps.CandidateUC)
	NewAddressHandler(api, deps.AddressUC)
	NewGenderHandler(api, deps.GenderUC)
	NewTechnologyHandler(api, deps.TechnologyUC)
	NewCompanyTechnologyHandler(api, deps.CompanyTechnologyUC)
	NewCandidateTechnologyHandler(api, deps.CandidateTechnologyUC)
	NewJobOpeningHandler(api, deps.JobOpeningUC)
	NewResponsibilityHandler(api, deps.ResponsibilityUC)
	NewInterviewHandler(api, deps.InterviewUC)
	NewJobInterviewWeightHandler(api, deps.JobInterviewWeightUC)
	NewReportHandler(api, deps.ReportUC)

	return r
}
