package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/reconcile"
	"storefront/internal/storefront"
)

const (
	defaultCatalogPageSize = 12
	maxCatalogPageSize     = 50
)

// productsHandler proxies the remote catalog. Nothing is cached locally; the
// catalog is always the platform's current view.
func productsHandler(remote *storefront.Client, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageSize := defaultCatalogPageSize
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
				return
			}
			pageSize = n
		}
		if pageSize > maxCatalogPageSize {
			pageSize = maxCatalogPageSize
		}

		payloads, err := remote.FetchCatalog(c.Request.Context(), pageSize)
		if err != nil {
			var remoteErr *storefront.RemoteError
			if errors.As(err, &remoteErr) {
				c.JSON(http.StatusBadGateway, gin.H{"error": remoteErr.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		products := make([]productView, 0, len(payloads))
		for _, payload := range payloads {
			products = append(products, toProductView(reconcile.Product(payload, logger)))
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
