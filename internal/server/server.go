package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"tokoaing-store/internal/handler"
	"tokoaing-store/internal/middleware"
	"tokoaing-store/internal/service"
)

type Server struct {
	echo *echo.Echo

	authService service.AdminAuthService

	authHandler        *handler.AuthHandler
	productHandler     *handler.ProductHandler
	userHandler        *handler.UserHandler
	purchaseHandler    *handler.PurchaseHandler
	leaderboardHandler *handler.LeaderboardHandler
	reviewHandler      *handler.ReviewHandler
	messageHandler     *handler.MessageHandler
	buttonHandler      *handler.ButtonHandler
	watchHandler       *handler.WatchHandler
}

func NewServer(
	authService service.AdminAuthService,
	catalogService service.CatalogService,
	identityService service.IdentityService,
	purchaseService service.PurchaseService,
	leaderboardService service.LeaderboardService,
	reviewService service.ReviewService,
	messagingService service.MessagingService,
	buttonService service.ButtonService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:               e,
		authService:        authService,
		authHandler:        handler.NewAuthHandler(authService),
		productHandler:     handler.NewProductHandler(catalogService),
		userHandler:        handler.NewUserHandler(identityService),
		purchaseHandler:    handler.NewPurchaseHandler(purchaseService),
		leaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
		reviewHandler:      handler.NewReviewHandler(reviewService),
		messageHandler:     handler.NewMessageHandler(messagingService),
		buttonHandler:      handler.NewButtonHandler(buttonService),
		watchHandler: handler.NewWatchHandler(
			catalogService,
			reviewService,
			buttonService,
			leaderboardService,
			purchaseService,
			messagingService,
		),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- public storefront --------
	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/reviews", s.reviewHandler.ListReviews)
	api.POST("/reviews", s.reviewHandler.AddReview)
	api.GET("/leaderboard", s.leaderboardHandler.GetLeaderboard)
	api.GET("/buttons", s.buttonHandler.ListCustomButtons)
	api.POST("/users", s.userHandler.Register)

	// -------- live snapshots (SSE) --------
	watch := api.Group("/watch")
	watch.GET("/products", s.watchHandler.WatchProducts)
	watch.GET("/reviews", s.watchHandler.WatchReviews)
	watch.GET("/buttons", s.watchHandler.WatchCustomButtons)
	watch.GET("/leaderboard", s.watchHandler.WatchLeaderboard)

	// -------- signed-in users --------
	me := api.Group("/me", middleware.UserIdentity())
	me.GET("", s.userHandler.Me)
	me.POST("/login", s.userHandler.RecordLogin)
	me.GET("/purchases", s.purchaseHandler.ListMyPurchases)
	me.POST("/purchases", s.purchaseHandler.CreatePurchase)
	me.POST("/purchases/:id/open", s.purchaseHandler.OpenMysteryBox)
	me.DELETE("/purchases/:id", s.purchaseHandler.DeletePurchase)
	me.GET("/messages", s.messageHandler.ListMyMessages)
	me.POST("/messages/:id/read", s.messageHandler.MarkMessageAsRead)
	me.GET("/watch/purchases", s.watchHandler.WatchMyPurchases)
	me.GET("/watch/messages", s.watchHandler.WatchMyMessages)

	// -------- admin panel --------
	api.POST("/admin/login", s.authHandler.AdminLogin)

	admin := api.Group("/admin", middleware.AdminAuth(s.authService))
	admin.POST("/products", s.productHandler.AddProduct)
	admin.PUT("/products/:id", s.productHandler.UpdateProduct)
	admin.DELETE("/products/:id", s.productHandler.DeleteProduct)

	admin.GET("/users", s.userHandler.ListUsers)
	admin.PUT("/users/:uid", s.userHandler.UpdateUser)
	admin.DELETE("/users/:uid", s.userHandler.DeleteUser)

	admin.GET("/purchases", s.purchaseHandler.ListAllPurchases)
	admin.PUT("/purchases/:id/status", s.purchaseHandler.UpdatePurchaseStatus)

	admin.PUT("/reviews/:id", s.reviewHandler.UpdateReview)
	admin.DELETE("/reviews/:id", s.reviewHandler.DeleteReview)

	admin.GET("/messages", s.messageHandler.ListAllMessages)
	admin.POST("/messages", s.messageHandler.SendPrivateMessage)
	admin.POST("/messages/global", s.messageHandler.SendGlobalMessage)

	admin.POST("/buttons", s.buttonHandler.AddCustomButton)
	admin.PUT("/buttons/:id", s.buttonHandler.UpdateCustomButton)
	admin.DELETE("/buttons/:id", s.buttonHandler.DeleteCustomButton)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
