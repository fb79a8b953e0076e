package router

import (
	"github.com/fussballmanager/go-api-server/internal/auth"
	"github.com/fussballmanager/go-api-server/internal/club"
	"github.com/fussballmanager/go-api-server/internal/config"
	"github.com/fussballmanager/go-api-server/internal/event"
	"github.com/fussballmanager/go-api-server/internal/member"
	"github.com/fussballmanager/go-api-server/internal/meta"
	"github.com/fussballmanager/go-api-server/internal/model"
	"github.com/fussballmanager/go-api-server/internal/payment"
	"github.com/fussballmanager/go-api-server/internal/shared/database"
	"github.com/fussballmanager/go-api-server/internal/shared/metrics"
	"github.com/fussballmanager/go-api-server/internal/shared/middleware"
	"github.com/fussballmanager/go-api-server/internal/shared/token"
	"github.com/fussballmanager/go-api-server/internal/user"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, m *metrics.Metrics) {
	// Meta (health check, metrics)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// repository
	memberRepository := member.NewMemberRepository()
	userRepository := user.NewUserRepository()
	clubRepository := club.NewClubRepository()
	eventRepository := event.NewEventRepository()
	paymentRepository := payment.NewPaymentRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(db.DB, userRepository, tokenManager)
	userService := user.NewUserService(db.DB, userRepository, memberRepository)
	memberService := member.NewMemberService(db.DB, memberRepository)
	clubService := club.NewClubService(db.DB, clubRepository)
	eventService := event.NewEventService(db.DB, eventRepository, clubRepository)
	paymentService := payment.NewPaymentService(db.DB, paymentRepository, memberRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	userHandler := user.NewUserHandler(userService)
	memberHandler := member.NewMemberHandler(memberService)
	clubHandler := club.NewClubHandler(clubService)
	eventHandler := event.NewEventHandler(eventService)
	paymentHandler := payment.NewPaymentHandler(paymentService)

	adminOnly := middleware.RequireRoles(model.RoleAdmin)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/signup", authHandler.Signup)
		authV1.POST("/login", authHandler.Login)
	}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWT(tokenManager))

	userV1 := v1.Group("/users")
	{
		userV1.GET("/me", userHandler.GetMe)
		userV1.PATCH("/:id/access", adminOnly, userHandler.UpdateAccess)
	}

	// member role checks need the target row, so they run in the service
	memberV1 := v1.Group("/members")
	{
		memberV1.POST("", memberHandler.Create)
		memberV1.GET("", memberHandler.List)
		memberV1.GET("/teams/:team", memberHandler.ListTeam)
		memberV1.GET("/:id", memberHandler.Get)
		memberV1.PATCH("/:id", memberHandler.Update)
		memberV1.DELETE("/:id", memberHandler.Delete)
		memberV1.POST("/:id/restore", memberHandler.Restore)
	}

	clubV1 := v1.Group("/clubs")
	{
		clubV1.POST("", adminOnly, clubHandler.Create)
		clubV1.GET("", clubHandler.List)
		clubV1.GET("/:id", clubHandler.Get)
	}

	eventV1 := v1.Group("/events")
	{
		eventV1.POST("", middleware.RequireRoles(model.RoleAdmin, model.RoleCoach), eventHandler.Create)
		eventV1.GET("", eventHandler.List)
		eventV1.GET("/:id", eventHandler.Get)
	}

	paymentV1 := v1.Group("/payments")
	{
		paymentV1.POST("", adminOnly, paymentHandler.Create)
		paymentV1.GET("", paymentHandler.List)
		paymentV1.POST("/:id/pay", adminOnly, paymentHandler.Pay)
	}
}
