package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushire/recruitment-system/internal/api/handler"
	"github.com/campushire/recruitment-system/internal/api/middleware"
	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
	"github.com/campushire/recruitment-system/internal/core/service"
	mongostore "github.com/campushire/recruitment-system/internal/infrastructure/db/mongo"
	redisstore "github.com/campushire/recruitment-system/internal/infrastructure/db/redis"
	"github.com/campushire/recruitment-system/internal/infrastructure/http/handlers"
)

const tokenTTL = 30 * 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity recorder is created by the caller so its workers can be
// started and stopped with the process.
func NewRouter(db *mongo.Database, rdb *redis.Client, recorder ports.ActivityRecorder, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("recruitment"))

	// --- Dependencies ---
	accountRepo := mongostore.NewAccountRepository(db)
	partnershipRepo := mongostore.NewPartnershipRepository(db)
	jobRepo := mongostore.NewJobRepository(db)

	var directoryCache service.DirectoryCache
	if rdb != nil {
		directoryCache = redisstore.NewDirectoryCache(rdb, log)
	}

	authService := service.NewAuthService(accountRepo, jwtSecret, tokenTTL, log)
	directoryService := service.NewDirectoryService(accountRepo, directoryCache, log)
	rosterService := service.NewRosterService(accountRepo, recorder, log)
	networkService := service.NewNetworkService(partnershipRepo, accountRepo, recorder, log)
	jobService := service.NewJobService(jobRepo, accountRepo, networkService, recorder, log)

	authHandler := handler.NewAuthHandler(authService, directoryService)
	rosterHandler := handler.NewRosterHandler(rosterService)
	networkHandler := handler.NewNetworkHandler(networkService)
	jobHandler := handler.NewJobHandler(jobService)

	authRequired := middleware.Auth(authService)
	rosterRoles := middleware.RBAC(domain.RoleCollege, domain.RoleCollegeMember)

	// --- Auth routes (public) ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.PUT("/change-password", authHandler.ChangePassword)
	auth.GET("/colleges", authHandler.ListColleges)

	// --- Roster routes (college staff only) ---
	auth.POST("/add-student", rosterHandler.AddStudent, authRequired, rosterRoles)
	auth.POST("/add-students-bulk", rosterHandler.ImportStudents, authRequired, rosterRoles)
	auth.POST("/add-staff", rosterHandler.AddStaff, authRequired, rosterRoles)
	auth.GET("/students/:collegeId", rosterHandler.ListStudents, authRequired, rosterRoles)
	auth.GET("/team/:collegeId", rosterHandler.ListTeam, authRequired, rosterRoles)
	auth.DELETE("/students/:studentId", rosterHandler.RemoveStudent, authRequired, rosterRoles)
	auth.PUT("/update-profile", rosterHandler.UpdateProfile, authRequired)

	// --- Network routes ---
	network := e.Group("/api/network", authRequired)
	network.POST("/connect", networkHandler.Connect)
	network.PUT("/respond", networkHandler.Respond)
	network.GET("/requests/:userId", networkHandler.ListNetwork)
	network.GET("/search-colleges", networkHandler.SearchColleges)

	// --- Job routes ---
	jobs := e.Group("/api/jobs", authRequired)
	jobs.POST("/create", jobHandler.Create, middleware.RBAC(domain.RoleCompany))
	jobs.GET("/company/:companyId", jobHandler.ListForCompany)
	jobs.GET("/feed/:collegeId", jobHandler.Feed)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
