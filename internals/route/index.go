package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"exeat_backend/internals/configs"
	blackoutService "exeat_backend/internals/features/exeats/blackouts/service"
	requestService "exeat_backend/internals/features/exeats/requests/service"
	notificationService "exeat_backend/internals/features/home/notifications/service"
	authService "exeat_backend/internals/features/users/auth/service"
	userService "exeat_backend/internals/features/users/user/service"
	helpersAuth "exeat_backend/internals/helpers/auth"
	rateLimiter "exeat_backend/internals/middlewares"
	authMiddleware "exeat_backend/internals/middlewares/auth"
	routeDetails "exeat_backend/internals/route/details"
)

var startTime time.Time

// Deps are the process-level collaborators the HTTP layer is built from.
type Deps struct {
	DB        *gorm.DB
	Tokens    *authService.TokenService
	Blacklist helpersAuth.Blacklist
	Emails    requestService.EmailQueue
	// Now overrides the clock of the services (tests).
	Now func() time.Time
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	if d.Now == nil {
		d.Now = time.Now
	}

	// ===================== SERVICES =====================
	blackouts := blackoutService.NewBlackoutService(d.DB)
	blackouts.Now = d.Now
	notifications := notificationService.NewNotificationService(d.DB)
	requests := requestService.NewExeatRequestService(d.DB, blackouts, notifications, d.Emails)
	requests.Now = d.Now
	auth := authService.NewAuthService(d.DB, d.Tokens, d.Blacklist)
	users := userService.NewUserService(d.DB)

	requireAuth := authMiddleware.AuthMiddleware(d.DB, d.Tokens, d.Blacklist)

	// ===================== BASE =====================
	BaseRoutes(app, d.DB)

	// ===================== API =====================
	api := app.Group("/api", rateLimiter.GlobalRateLimiter())

	configs.Log().Info("mounting auth routes")
	routeDetails.AuthRoutes(api, auth, requireAuth)

	configs.Log().Info("mounting exeat routes")
	routeDetails.ExeatRoutes(api, requireAuth, requests, notifications)

	configs.Log().Info("mounting user & super-admin routes")
	routeDetails.UserRoutes(api, requireAuth, users, blackouts)

	configs.Log().Info("routes ready", zap.Int("handlers", int(app.HandlersCount())))
}
