package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/imran-binhasan/fitstat-server/internal/auth"
	"github.com/imran-binhasan/fitstat-server/internal/class"
	"github.com/imran-binhasan/fitstat-server/internal/config"
	"github.com/imran-binhasan/fitstat-server/internal/dashboard"
	"github.com/imran-binhasan/fitstat-server/internal/email"
	"github.com/imran-binhasan/fitstat-server/internal/forum"
	"github.com/imran-binhasan/fitstat-server/internal/newsletter"
	"github.com/imran-binhasan/fitstat-server/internal/payment"
	"github.com/imran-binhasan/fitstat-server/internal/review"
	"github.com/imran-binhasan/fitstat-server/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	userService := user.NewService(user.NewRepository(db), cfg.JWTSecret, emailService)
	classService := class.NewService(class.NewRepository(db))
	paymentService := payment.NewService(
		payment.NewRepository(db),
		payment.NewStripeGateway(cfg.StripeSecretKey),
		classService,
		emailService,
	)
	forumService := forum.NewService(forum.NewRepository(db), userService)
	reviewService := review.NewService(review.NewRepository(db), userService)
	newsletterService := newsletter.NewService(newsletter.NewRepository(db), emailService)
	dashboardService := dashboard.NewService(dashboard.NewRepository(db))

	userHandler := user.NewHandler(userService)
	classHandler := class.NewHandler(classService)
	paymentHandler := payment.NewHandler(paymentService)
	forumHandler := forum.NewHandler(forumService)
	reviewHandler := review.NewHandler(reviewService)
	newsletterHandler := newsletter.NewHandler(newsletterService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
		public.POST("/forgot-password", userHandler.ForgotPassword)
	}

	router.GET("/classes", classHandler.ListClasses)
	router.GET("/classes/:id", classHandler.GetClass)
	router.GET("/reviews", reviewHandler.ListReviews)
	router.GET("/forum", forumHandler.ListPosts)
	router.GET("/forum/:id", forumHandler.GetPost)
	router.GET("/trainers/:id/slots", userHandler.GetTrainerSlots)
	router.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
	router.POST("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.POST("/users/apply", userHandler.ApplyForTrainer)

		protected.PATCH("/classes/:id/book", classHandler.BookClass)

		protected.POST("/payments/create-payment-intent", paymentHandler.CreateIntent)
		protected.POST("/payments", paymentHandler.ConfirmPayment)
		protected.GET("/payments", paymentHandler.ListMyPayments)

		protected.POST("/forum", forumHandler.CreatePost)
		protected.PUT("/forum/:id", forumHandler.UpdatePost)
		protected.DELETE("/forum/:id", forumHandler.DeletePost)
		protected.POST("/forum/:id/vote", forumHandler.VotePost)

		protected.POST("/reviews", reviewHandler.CreateReview)
	}

	trainer := router.Group("/trainer")
	trainer.Use(authMiddleware, auth.RequireRole(user.RoleTrainer, user.RoleAdmin))
	{
		trainer.POST("/slots", userHandler.CreateSlot)
		trainer.DELETE("/slots/:id", userHandler.DeleteSlot)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(user.RoleAdmin))
	{
		admin.GET("/dashboard", dashboardHandler.GetOverview)

		admin.GET("/users", userHandler.ListUsers)
		admin.DELETE("/users/:id", userHandler.DeleteUser)
		admin.POST("/users/:id/approve", userHandler.ApproveApplication)
		admin.POST("/users/:id/reject", userHandler.RejectApplication)

		admin.POST("/classes", classHandler.CreateClass)
		admin.PUT("/classes/:id", classHandler.UpdateClass)
		admin.DELETE("/classes/:id", classHandler.DeleteClass)

		admin.GET("/payments", paymentHandler.ListAllPayments)
		admin.POST("/payments/:id/refund", paymentHandler.RefundPayment)

		admin.PATCH("/forum/:id/pin", forumHandler.PinPost)
		admin.PATCH("/forum/:id/hide", forumHandler.HidePost)

		admin.PATCH("/reviews/:id/verify", reviewHandler.VerifyReview)
		admin.DELETE("/reviews/:id", reviewHandler.DeleteReview)

		admin.GET("/newsletter", newsletterHandler.ListSubscribers)
	}

	router.GET("/health", Health)
	router.GET("/test-email", TestEmail(emailService))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
