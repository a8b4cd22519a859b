package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	"storefront/internal/storefront"
)

type addLineRequest struct {
	VariantID string `json:"variantId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateLineRequest struct {
	Quantity *int `json:"quantity"`
	Delta    *int `json:"delta"`
}

func getCartHandler(c *gin.Context) {
	engine := engineFrom(c)
	c.JSON(http.StatusOK, toCartView(engine.Cart(), engine.ValidationMessages()))
}

func validationHandler(c *gin.Context) {
	messages := engineFrom(c).ValidationMessages()
	if messages == nil {
		messages = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"messages":    messages,
		"canCheckout": len(messages) == 0,
	})
}

func addLineHandler(c *gin.Context) {
	var req addLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "variantId is required"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	engine := engineFrom(c)
	cart, err := engine.AddToCart(c.Request.Context(), req.VariantID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart, engine.ValidationMessages()))
}

func updateLineHandler(c *gin.Context) {
	var req updateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Quantity == nil && req.Delta == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity or delta is required"})
		return
	}

	engine := engineFrom(c)
	lineID := c.Param("lineID")

	var cart domain.Cart
	var err error
	if req.Quantity != nil {
		cart, err = engine.SetQuantity(c.Request.Context(), lineID, *req.Quantity)
	} else {
		cart, err = engine.AdjustQuantity(c.Request.Context(), lineID, *req.Delta)
	}
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart, engine.ValidationMessages()))
}

func removeLineHandler(c *gin.Context) {
	engine := engineFrom(c)
	cart, err := engine.RemoveFromCart(c.Request.Context(), c.Param("lineID"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart, engine.ValidationMessages()))
}

func checkoutHandler(c *gin.Context) {
	result := engineFrom(c).Checkout(c.Request.Context())
	switch {
	case result.Busy:
		c.JSON(http.StatusAccepted, gin.H{"status": "in_flight"})
	case result.Allowed():
		c.JSON(http.StatusOK, gin.H{"redirectUrl": result.RedirectURL})
	default:
		c.JSON(http.StatusConflict, gin.H{"messages": result.Messages})
	}
}

// respondCartError maps engine errors onto HTTP statuses. Remote failures are
// upstream trouble, not client mistakes.
func respondCartError(c *gin.Context, err error) {
	var remoteErr *storefront.RemoteError
	switch {
	case errors.As(err, &remoteErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": remoteErr.Message})
	case errors.Is(err, domain.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
