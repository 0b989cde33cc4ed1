package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/ats-backend/internal/config"
	"github.com/ignatzorin/ats-backend/internal/http/handlers"
	"github.com/ignatzorin/ats-backend/internal/http/middleware"
	"github.com/ignatzorin/ats-backend/internal/models"
	"github.com/ignatzorin/ats-backend/internal/service"
)

// SetupRouter собирает маршруты. Права: чтение доступно всем сотрудникам,
// управление компаниями и вакансиями — LEADER и ADMIN, удаление и список
// пользователей — только ADMIN.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	companyHandler *handlers.CompanyHandler,
	jobOrderHandler *handlers.JobOrderHandler,
	candidateHandler *handlers.CandidateHandler,
	interviewHandler *handlers.InterviewHandler,
	offerHandler *handlers.OfferHandler,
	statsHandler *handlers.StatsHandler,
	notificationHandler *handlers.NotificationHandler,
	wsHandler *handlers.WSHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authRateLimit := middleware.RateLimitMiddleware(5, cfg.RateLimitPeriod)
	authGroup.Use(authRateLimit)
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
	}

	api.GET("/ws", wsHandler.Handle)

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/stats/dashboard", statsHandler.GetDashboardStats)

		protected.GET("/notifications", notificationHandler.ListNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.CountUnread)
		protected.POST("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.POST("/notifications/:id/read", middleware.UUIDValidator("id"), notificationHandler.MarkAsRead)

		// Компании
		protected.GET("/companies", companyHandler.ListCompanies)
		protected.GET("/companies/:id", middleware.UUIDValidator("id"), companyHandler.GetCompany)

		// Вакансии
		protected.GET("/job-orders", jobOrderHandler.ListJobOrders)
		protected.GET("/job-orders/:id", middleware.UUIDValidator("id"), jobOrderHandler.GetJobOrder)

		// Кандидаты и воронка
		protected.GET("/candidates", candidateHandler.ListCandidates)
		protected.GET("/candidates/:id", middleware.UUIDValidator("id"), candidateHandler.GetCandidate)
		protected.GET("/candidates/:id/history", middleware.UUIDValidator("id"), candidateHandler.GetHistory)
		protected.POST("/candidates", candidateHandler.CreateCandidate)
		protected.PUT("/candidates/:id", middleware.UUIDValidator("id"), candidateHandler.UpdateCandidate)
		protected.POST("/candidates/:id/transition", middleware.UUIDValidator("id"), candidateHandler.Transition)
		protected.POST("/candidates/:id/contact", middleware.UUIDValidator("id"), candidateHandler.MarkContacted)
		protected.POST("/candidates/:id/qualify", middleware.UUIDValidator("id"), candidateHandler.Qualify)
		protected.POST("/candidates/:id/reject", middleware.UUIDValidator("id"), candidateHandler.Reject)
		protected.POST("/candidates/:id/post-joining", middleware.UUIDValidator("id"), offerHandler.PostJoiningOutcome)

		// Интервью
		protected.GET("/interviews", interviewHandler.ListInterviews)
		protected.GET("/interviews/:id", middleware.UUIDValidator("id"), interviewHandler.GetInterview)
		protected.POST("/interviews", interviewHandler.Schedule)
		protected.POST("/interviews/:id/decision", middleware.UUIDValidator("id"), interviewHandler.Decide)
		protected.POST("/interviews/:id/cancel", middleware.UUIDValidator("id"), interviewHandler.Cancel)

		// Офферы
		protected.GET("/offers", offerHandler.ListOffers)
		protected.GET("/offers/:id", middleware.UUIDValidator("id"), offerHandler.GetOffer)
		protected.POST("/offers", offerHandler.CreateOffer)
		protected.POST("/offers/:id/decision", middleware.UUIDValidator("id"), offerHandler.Decide)
		protected.POST("/offers/:id/withdraw", middleware.UUIDValidator("id"), offerHandler.Withdraw)
		protected.POST("/offers/:id/joining", middleware.UUIDValidator("id"), offerHandler.ConfirmJoining)
	}

	// Управление клиентами и вакансиями: LEADER и ADMIN
	management := api.Group("/")
	management.Use(middleware.AuthMiddleware(tokenManager))
	management.Use(middleware.RequireRole(models.RoleLeader, models.RoleAdmin))
	{
		management.POST("/companies", companyHandler.CreateCompany)
		management.PUT("/companies/:id", middleware.UUIDValidator("id"), companyHandler.UpdateCompany)

		management.POST("/job-orders", jobOrderHandler.CreateJobOrder)
		management.PUT("/job-orders/:id", middleware.UUIDValidator("id"), jobOrderHandler.UpdateJobOrder)
		management.PUT("/job-orders/:id/recruiters", middleware.UUIDValidator("id"), jobOrderHandler.AssignRecruiters)
	}

	// Административные операции
	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(tokenManager))
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", userHandler.ListUsers)
		admin.GET("/users/:id", middleware.UUIDValidator("id"), userHandler.GetUser)

		admin.DELETE("/companies/:id", middleware.UUIDValidator("id"), companyHandler.DeleteCompany)
		admin.DELETE("/job-orders/:id", middleware.UUIDValidator("id"), jobOrderHandler.DeleteJobOrder)
		admin.DELETE("/candidates/:id", middleware.UUIDValidator("id"), candidateHandler.DeleteCandidate)
	}

	return r
}
