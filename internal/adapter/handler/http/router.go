package http

import (
	"net/http"
	"strings"

	"github.com/sperez-mk/miso-backend/internal/config"
	"github.com/sperez-mk/miso-backend/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

// NewPaymentsRouter wires the card/balance/payment endpoints behind the
// shared-secret API-key gate. The liveness endpoint, metrics and swagger stay
// outside the gate.
func NewPaymentsRouter(
	config *config.HTTP,
	apiKey string,
	cardHandler *CardHandler,
	balanceHandler *BalanceHandler,
	paymentHandler *PaymentHandler,
) (*Router, error) {
	router := newBaseRouter(config)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Payments Service"})
	})

	api := router.Group("/miso-stripe")
	api.Use(APIKeyMiddleware(apiKey))
	{
		api.POST("/cards", cardHandler.CreateCard)
		api.GET("/cards", cardHandler.GetCards)
		api.POST("/balances", balanceHandler.Deposit)
		api.DELETE("/balances", balanceHandler.Withdraw)
		api.POST("/payments", paymentHandler.ProcessPayment)
	}

	return &Router{
		Engine: router,
	}, nil
}

// NewAuthRouter wires registration and login openly and the profile endpoint
// behind the bearer-token middleware.
func NewAuthRouter(
	config *config.HTTP,
	tokenService ports.TokenService,
	authHandler *AuthHandler,
) (*Router, error) {
	router := newBaseRouter(config)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "User Registration Service"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		protected := auth.Group("")
		protected.Use(AuthMiddleware(tokenService))
		{
			protected.GET("/me", authHandler.Me)
		}
	}

	return &Router{
		Engine: router,
	}, nil
}

func newBaseRouter(config *config.HTTP) *gin.Engine {
	if config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginConfig := cors.DefaultConfig()
	ginConfig.AllowOrigins = strings.Split(config.AllowedOrigins, ",")

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.New(ginConfig))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// Starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
