package httpserver

import (
	"log"
	"net/http"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires the storefront API.
func buildRouter(logger *log.Logger, store *badger.DB, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsCfg.AllowOrigins = allowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(store))

	engines := newSessions(deps.Remote, deps.Records, logger)

	api := router.Group("/api")
	api.GET("/products", productsHandler(deps.Remote, logger))

	carted := api.Group("")
	carted.Use(sessionMiddleware(engines))
	carted.GET("/cart", getCartHandler)
	carted.GET("/cart/validation", validationHandler)
	carted.POST("/cart/lines", addLineHandler)
	carted.PATCH("/cart/lines/:lineID", updateLineHandler)
	carted.DELETE("/cart/lines/:lineID", removeLineHandler)
	carted.POST("/checkout", checkoutHandler)

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(store *badger.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || store.IsClosed() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "local store not open"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
