package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"posbackend/internal/config"
	h "posbackend/internal/http/handlers"
	"posbackend/internal/http/middleware"
	"posbackend/internal/metrics"
)

func NewRouter(env config.Env) *gin.Engine {
	h.Init(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	secret := []byte(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Settlement
		api.POST("/checkout", middleware.AuthRequired(secret), h.Checkout)

		transactions := api.Group("/transactions", middleware.AuthRequired(secret))
		transactions.GET("", h.ListTransactions)
		transactions.GET("/receipt/:number", h.GetTransactionByReceiptNumber)
		transactions.GET("/:id", h.GetTransactionByID)
		transactions.GET("/:id/receipt", h.GetTransactionReceiptPDF)

		// Catalog; reads are open, writes need a manager
		manager := middleware.RequireRoles("owner", "admin", "manager")

		products := api.Group("/products")
		products.GET("", h.GetProducts)
		products.GET("/:id", h.GetProductByID)
		products.POST("", middleware.AuthRequired(secret), manager, h.CreateProduct)
		products.PUT("/:id", middleware.AuthRequired(secret), manager, h.UpdateProduct)
		products.DELETE("/:id", middleware.AuthRequired(secret), manager, h.DeleteProduct)

		equipment := api.Group("/equipment")
		equipment.GET("", h.GetEquipment)
		equipment.GET("/:id", h.GetEquipmentByID)
		equipment.POST("", middleware.AuthRequired(secret), manager, h.CreateEquipment)
		equipment.PUT("/:id", middleware.AuthRequired(secret), manager, h.UpdateEquipment)
		equipment.DELETE("/:id", middleware.AuthRequired(secret), manager, h.DeleteEquipment)

		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.POST("", middleware.AuthRequired(secret), manager, h.CreateTrip)
		trips.PUT("/:id", middleware.AuthRequired(secret), manager, h.UpdateTrip)
		trips.DELETE("/:id", middleware.AuthRequired(secret), manager, h.DeleteTrip)
	}

	return r
}
