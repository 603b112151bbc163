package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stylohub/stylohub-api/internal/cache"
	"github.com/stylohub/stylohub-api/internal/config"
	"github.com/stylohub/stylohub-api/internal/gate"
	"github.com/stylohub/stylohub-api/internal/handlers"
	"github.com/stylohub/stylohub-api/internal/httperr"
	infraRepo "github.com/stylohub/stylohub-api/internal/infra/repository"
	"github.com/stylohub/stylohub-api/internal/middleware"
	"github.com/stylohub/stylohub-api/internal/store"
	ucOnboarding "github.com/stylohub/stylohub-api/internal/usecase/onboarding"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, st *store.Store, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// Rota certa com verbo errado responde 405 (contrato do
	// onboarding), não 404, no mesmo formato JSON dos outros erros.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		httperr.MethodNotAllowed(c, "method_not_allowed", "Método não permitido para esta rota.")
	})

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	barberRepo := infraRepo.NewBarberGormRepository(db)
	profileCache := cache.New(cfg.RedisURL)
	guard := gate.NewGuard(barberRepo)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	submitOnboardingUC := ucOnboarding.NewSubmit(barberRepo, profileCache)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(barberRepo, profileCache)
	onboardingHandler := handlers.NewOnboardingHandler(submitOnboardingUC)
	avatarHandler := handlers.NewAvatarHandler(barberRepo, cfg)
	paymentHandler := handlers.NewPaymentHandler(st, cfg.MPAccessToken)
	dashboardHandler := handlers.NewDashboardHandler(st)
	appWebHandler := handlers.NewAppWebHandler(guard, cfg)

	// ======================================================
	// 🌍 ROTAS WEB
	// ======================================================
	r.GET("/", appWebHandler.Home)

	webApp := r.Group("/web/app")
	{
		webApp.GET("/login", appWebHandler.LoginPage)
		webApp.GET("/cadastro", appWebHandler.SignupPage)
		webApp.GET("/onboarding",
			appWebHandler.Guard(gate.BlockIfOnboarded),
			appWebHandler.OnboardingPage,
		)
		webApp.GET("/dashboard",
			appWebHandler.Guard(gate.RequireOnboarded),
			appWebHandler.Dashboard,
		)
	}

	r.NoRoute(appWebHandler.NotFound)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/avatar", avatarHandler.Upload)

			secured.POST("/onboarding", onboardingHandler.Submit)

			// ------------------------------
			// DASHBOARD (estado em memória)
			// ------------------------------
			app := secured.Group("/app")
			{
				app.GET("/state", dashboardHandler.GetState)

				app.GET("/appointments", dashboardHandler.ListAppointments)
				app.POST("/appointments", dashboardHandler.CreateAppointment)
				app.PATCH("/appointments/:id/confirm", dashboardHandler.ConfirmAppointment)
				app.PATCH("/appointments/:id/complete", dashboardHandler.CompleteAppointment)
				app.PATCH("/appointments/:id/no-show", dashboardHandler.MarkNoShow)
				app.PATCH("/appointments/:id/cancel", dashboardHandler.CancelAppointment)
				app.POST("/appointments/:id/payment-link", paymentHandler.CreateLink)

				app.POST("/courses/:courseId/modules/:moduleId/lessons/:lessonId/complete",
					dashboardHandler.CompleteLesson)

				app.GET("/clients", dashboardHandler.ListClients)
				app.POST("/clients", dashboardHandler.AddClient)

				app.PATCH("/user", dashboardHandler.UpdateUser)
				app.POST("/user/preferences", dashboardHandler.CompletePreferences)
				app.POST("/logout", dashboardHandler.Logout)

				app.PATCH("/notifications/:id/read", dashboardHandler.MarkNotificationRead)
				app.DELETE("/notifications", dashboardHandler.ClearNotifications)
			}
		}
	}
}
