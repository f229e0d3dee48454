package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pctowa/pctowa-backend/internal/config"
	"github.com/pctowa/pctowa-backend/internal/handler"
	"github.com/pctowa/pctowa-backend/internal/metrics"
	"github.com/pctowa/pctowa-backend/internal/middleware"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/response"
	"github.com/pctowa/pctowa-backend/internal/service"
)

// APIHandlers groups the resource API handler instances for route setup.
type APIHandlers struct {
	AuthProxy *handler.AuthProxyHandler
	User      *handler.UserHandler
	Company   *handler.CompanyHandler
	Address   *handler.AddressHandler
	Contact   *handler.ContactHandler
	Class     *handler.ClassHandler
	Student   *handler.StudentHandler
	Tutor     *handler.TutorHandler
	Shift     *handler.ShiftHandler
	Catalog   *handler.CatalogHandler
	Health    *handler.HealthHandler
}

// SetupAPIRouter configures the resource API route groups. The
// validator is expected to enforce the active-session check alongside
// signature verification.
func SetupAPIRouter(verifier middleware.TokenValidator, handlers *APIHandlers, cfg *config.Config) *gin.Engine {
	router := newEngine(cfg)

	router.GET("/health", handlers.Health.Health)
	if gin.Mode() == gin.DebugMode {
		router.GET("/endpoints", handler.ListEndpoints(router))
	}

	// ─── Auth (public login, authenticated profile) ────────────────────
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerIP)
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), handlers.AuthProxy.Login)
		auth.GET("/me", middleware.RequireJWT(verifier), handlers.AuthProxy.Me)
	}
	// Kept for clients that log in through the users resource.
	router.POST("/api/v1/users/login", loginLimiter.Middleware(), handlers.AuthProxy.Login)

	// ─── Resource API (JWT required) ───────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireJWT(verifier))

	// Write access tiers. Reads are open to every authenticated role.
	adminOnly := middleware.RequireAdmin()
	staff := middleware.RequireRole(model.RoleAdmin, model.RoleSupertutor)
	tutors := middleware.RequireRole(model.RoleAdmin, model.RoleSupertutor, model.RoleTutor)

	{
		// Account management
		api.GET("/users", adminOnly, handlers.User.ListUsers)
		api.GET("/users/:email", adminOnly, handlers.User.GetUser)
		api.POST("/users", adminOnly, handlers.User.CreateUser)
		api.PUT("/users/:email", adminOnly, handlers.User.UpdateUser)
		api.DELETE("/users/:email", adminOnly, handlers.User.DeleteUser)
		api.POST("/users/:email/company", adminOnly, handlers.User.BindCompany)
		api.GET("/users/reference-teachers/:id", handlers.User.ReferenceTeachers)

		// Companies
		api.GET("/companies", handlers.Company.ListCompanies)
		api.GET("/companies/:id", handlers.Company.GetCompany)
		api.POST("/companies", tutors, handlers.Company.CreateCompany)
		api.PUT("/companies/:id", tutors, handlers.Company.UpdateCompany)
		api.DELETE("/companies/:id", tutors, handlers.Company.DeleteCompany)
		api.GET("/companies/:id/addresses", handlers.Address.ListAddresses)
		api.GET("/companies/:id/contacts", handlers.Contact.ListContacts)
		api.GET("/companies/:id/shifts", handlers.Shift.ListCompanyShifts)

		// Addresses
		api.GET("/addresses/:id", handlers.Address.GetAddress)
		api.POST("/addresses", tutors, handlers.Address.CreateAddress)
		api.PUT("/addresses/:id", tutors, handlers.Address.UpdateAddress)
		api.DELETE("/addresses/:id", tutors, handlers.Address.DeleteAddress)

		// Contacts
		api.GET("/contacts/:id", handlers.Contact.GetContact)
		api.POST("/contacts", tutors, handlers.Contact.CreateContact)
		api.PUT("/contacts/:id", tutors, handlers.Contact.UpdateContact)
		api.DELETE("/contacts/:id", tutors, handlers.Contact.DeleteContact)

		// Tutors
		api.GET("/tutors", handlers.Tutor.ListTutors)
		api.GET("/tutors/:id", handlers.Tutor.GetTutor)
		api.POST("/tutors", tutors, handlers.Tutor.CreateTutor)
		api.PUT("/tutors/:id", tutors, handlers.Tutor.UpdateTutor)
		api.DELETE("/tutors/:id", tutors, handlers.Tutor.DeleteTutor)

		// Classes
		api.GET("/classes", handlers.Class.ListClasses)
		api.GET("/classes/search", handlers.Class.SearchClasses)
		api.GET("/classes/coordinator/:email", handlers.Class.ListByCoordinator)
		api.GET("/classes/:id", handlers.Class.GetClass)
		api.GET("/classes/:id/students", handlers.Student.ListClassStudents)
		api.GET("/classes/:id/export", handlers.Class.ExportClass)
		api.POST("/classes", staff, handlers.Class.CreateClass)
		api.PUT("/classes/:id", staff, handlers.Class.UpdateClass)
		api.DELETE("/classes/:id", staff, handlers.Class.DeleteClass)

		// Students and shift assignments
		api.GET("/students", handlers.Student.ListStudents)
		api.GET("/students/:number", handlers.Student.GetStudent)
		api.POST("/students", staff, handlers.Student.CreateStudent)
		api.PUT("/students/:number", staff, handlers.Student.UpdateStudent)
		api.DELETE("/students/:number", staff, handlers.Student.DeleteStudent)
		api.POST("/students/:number/shifts", staff, handlers.Student.AssignShift)
		api.DELETE("/students/:number/shifts/:shiftId", staff, handlers.Student.UnassignShift)

		// Shifts
		api.GET("/shifts", handlers.Shift.ListShifts)
		api.GET("/shifts/:id", handlers.Shift.GetShift)
		api.GET("/shifts/:id/students", handlers.Student.ListShiftStudents)
		api.GET("/shifts/:id/export", handlers.Shift.ExportShift)
		api.POST("/shifts", staff, handlers.Shift.CreateShift)
		api.PUT("/shifts/:id", staff, handlers.Shift.UpdateShift)
		api.DELETE("/shifts/:id", staff, handlers.Shift.DeleteShift)

		// Catalogs
		api.GET("/sectors", handlers.Catalog.ListSectors)
		api.POST("/sectors", staff, handlers.Catalog.CreateSector)
		api.DELETE("/sectors/:name", staff, handlers.Catalog.DeleteSector)
		api.GET("/legal-forms", handlers.Catalog.ListLegalForms)
		api.POST("/legal-forms", staff, handlers.Catalog.CreateLegalForm)
		api.DELETE("/legal-forms/:name", staff, handlers.Catalog.DeleteLegalForm)
		api.GET("/subjects", handlers.Catalog.ListSubjects)
		api.POST("/subjects", staff, handlers.Catalog.CreateSubject)
		api.PUT("/subjects/:name", staff, handlers.Catalog.UpdateSubject)
		api.DELETE("/subjects/:name", staff, handlers.Catalog.DeleteSubject)
	}

	return router
}

// SetupAuthRouter configures the auth server routes.
func SetupAuthRouter(authService *service.AuthService, authHandler *handler.AuthHandler, health *handler.HealthHandler, cfg *config.Config) *gin.Engine {
	router := newEngine(cfg)

	router.GET("/health", health.Health)

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerIP)
	sessionVerifier := service.NewSessionVerifier(authService.TokenVerifier, authService)
	auth := router.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), authHandler.Login)
		auth.POST("/validate", middleware.NoStore(), authHandler.Validate)
		auth.POST("/logout", middleware.RequireJWT(sessionVerifier), authHandler.Logout)
	}

	return router
}

// SetupLogRouter configures the log server HTTP routes. The UDP syslog
// listener runs separately in the log server main.
func SetupLogRouter(verifier middleware.TokenValidator, logHandler *handler.LogHandler, health *handler.HealthHandler, cfg *config.Config) *gin.Engine {
	router := newEngine(cfg)

	router.GET("/health", health.Health)

	router.POST("/log", logHandler.Ingest)
	router.GET("/log/stream", middleware.RequireWSAuth(verifier), logHandler.Stream)

	return router
}

// newEngine builds a Gin engine with the shared middleware stack:
// CORS, request IDs, brotli compression and Prometheus metrics.
func newEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())
	router.Use(metrics.Middleware())

	router.GET("/metrics", metrics.Handler())

	return router
}
