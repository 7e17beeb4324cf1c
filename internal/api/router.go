package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/passaqui/passaqui-api/internal/api/handler"
	"github.com/passaqui/passaqui-api/internal/core/ports"
	"github.com/passaqui/passaqui-api/internal/core/service"
	mongostore "github.com/passaqui/passaqui-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// db may be nil: the server still starts, auth endpoints answer with a store
// unavailable error, and /test reports the uninitialized state.
func NewRouter(db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("passaqui"))

	// Open CORS policy inherited from the demo deployment: any origin, any
	// method/header, credentials allowed. A weak default, kept deliberately.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"*"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		// Echo refuses to combine a wildcard origin with credentials unless
		// told so explicitly; the demo deployment requires exactly that.
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))

	// --- Dependencies ---
	var userRepo ports.UserRepository
	if db != nil {
		userRepo = mongostore.NewUserRepository(db)
	}
	authService := service.NewAuthService(userRepo, log)
	tripService := service.NewTripService()

	authHandler := handler.NewAuthHandler(authService)
	tripHandler := handler.NewTripHandler(tripService)
	demoHandler := handler.NewDemoHandler()
	diagHandler := handler.NewDiagnosticHandler(db)

	// --- Routes ---
	e.GET("/", diagHandler.Root)
	e.GET("/test", diagHandler.Report)

	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	e.POST("/search", tripHandler.Search)

	e.GET("/demo/messages", demoHandler.Messages)
	e.GET("/demo/wallet", demoHandler.Wallet)
	e.GET("/demo/profiles", demoHandler.Profiles)
	e.GET("/demo/achievements", demoHandler.Achievements)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
