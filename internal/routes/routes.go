package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nileshsn/shopeasy-api/internal/handlers"
	"github.com/nileshsn/shopeasy-api/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// CORS first, before anything can answer.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.PrometheusMiddleware())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)

		// --- Public Catalog Routes ---
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.GET("/reviews/:productId", h.GetReviews)

		// --- Newsletter ---
		v1.POST("/newsletter", h.Subscribe)

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			// --- Cart Routes ---
			auth.GET("/cart", h.GetCart)
			auth.POST("/cart", h.AddToCart)
			auth.PATCH("/cart/:id", h.UpdateCartItem)
			auth.DELETE("/cart/:id", h.DeleteCartItem)

			// --- Order Routes ---
			auth.POST("/orders", h.PlaceOrder)
			auth.GET("/orders", h.GetMyOrders)

			// --- Review Routes ---
			auth.POST("/reviews/:productId", h.SubmitReview)

			// --- Wishlist Routes ---
			auth.GET("/wishlist", h.GetWishlist)
			auth.POST("/wishlist", h.AddToWishlist)
			auth.DELETE("/wishlist", h.RemoveFromWishlist)

			// --- Profile Routes ---
			auth.GET("/profile", h.GetProfile)
			auth.PUT("/profile", h.UpdateProfile)
			auth.GET("/profile/stats", h.GetProfileStats)
		}
	}

	return router
}
