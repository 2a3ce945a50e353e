package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type wishlistItemRequest struct {
	ProductID   string  `json:"productId" binding:"required"`
	VariationID *string `json:"variationId"`
}

func getWishlistHandler(svc WishlistService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		wl, err := svc.Get(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, wl)
	}
}

func addWishlistItemHandler(svc WishlistService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req wishlistItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		wl, err := svc.Add(c.Request.Context(), currentUser(c), req.ProductID, req.VariationID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, wl)
	}
}

func removeWishlistItemHandler(svc WishlistService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req wishlistItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		wl, err := svc.Remove(c.Request.Context(), currentUser(c), req.ProductID, req.VariationID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, wl)
	}
}
