package routes

import (
	"github.com/SHIVA769/snapbites/configs"
	"github.com/SHIVA769/snapbites/controllers"
	"github.com/SHIVA769/snapbites/middlewares"
	"github.com/SHIVA769/snapbites/repository"
	"github.com/SHIVA769/snapbites/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	reelRepo := repository.NewReelRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Services
	activitySvc := services.NewActivityService(db, activityRepo, reelRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	feedSvc := services.NewFeedService(db, reelRepo, activityRepo, orderRepo, userRepo, activitySvc)
	reelSvc := services.NewReelService(db, reelRepo, activitySvc)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, reelRepo, activitySvc)
	recSvc := services.NewRecommendationService(menuRepo, activityRepo, orderRepo)
	userSvc := services.NewUserService(db, userRepo, reelRepo, orderRepo, activityRepo)
	restSvc := services.NewRestaurantService(db, menuRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	reelCtrl := controllers.NewReelController(feedSvc, reelSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	recCtrl := controllers.NewRecommendationController(recSvc)
	userCtrl := controllers.NewUserController(userSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	optional := middlewares.OptionalAuthMiddleware(cfg.JWTSecret)
	creatorOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "creator", "owner", "admin")
	ownerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin")

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Feed and reels. The feed is public; personalization and view
	// tracking kick in when a token is present.
	r.GET("/reels", optional, reelCtrl.List)
	r.POST("/reels", creatorOnly, reelCtrl.Create)
	r.GET("/reels/:id/comments", reelCtrl.Comments)

	reels := r.Group("/reels", auth)
	{
		reels.POST("/:id/like", reelCtrl.ToggleLike)
		reels.POST("/:id/save", reelCtrl.ToggleSave)
		reels.GET("/saved", reelCtrl.Saved)
		reels.POST("/:id/comments", reelCtrl.AddComment)
	}

	// Recommendations (auth optional)
	r.GET("/recommendations", optional, recCtrl.List)

	// Cart & orders
	u := r.Group("/", auth)
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart", cartCtrl.Add)
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListMine)
		u.GET("/users/activities", userCtrl.Activities)
		u.POST("/users/:id/follow", userCtrl.ToggleFollow)
	}
	r.GET("/users/:id/profile", optional, userCtrl.Profile)

	// Creator dashboard
	creator := r.Group("/creator", auth)
	{
		creator.GET("/analytics", reelCtrl.Analytics)
		creator.GET("/commissions", userCtrl.CommissionStats)
	}

	// Restaurants & menu (minimal owner surface)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id/menu-items", restCtrl.MenuItems)
	r.POST("/restaurants", ownerOnly, restCtrl.Create)
	r.POST("/menu-items", ownerOnly, restCtrl.CreateMenuItem)
}
