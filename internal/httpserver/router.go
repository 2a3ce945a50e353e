package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopcart/internal/domain"
)

// CartService is what the cart handlers need from the service layer.
type CartService interface {
	AddToCart(ctx context.Context, userID, productID string, variationID *string, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error)
	RemoveItems(ctx context.Context, userID string, productIDs []string) (*domain.Cart, error)
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	AttachCoupon(ctx context.Context, userID, code string) (*domain.Cart, error)
	DetachCoupon(ctx context.Context, userID, code string) (*domain.Cart, error)
	CalculateTotals(ctx context.Context, userID string, billingAddressID, shippingAddressID *string) (*domain.CartCalculationResult, error)
}

// WishlistService is what the wishlist handlers need.
type WishlistService interface {
	Add(ctx context.Context, userID, productID string, variationID *string) (*domain.Wishlist, error)
	Remove(ctx context.Context, userID, productID string, variationID *string) (*domain.Wishlist, error)
	Get(ctx context.Context, userID string) (*domain.Wishlist, error)
}

type Deps struct {
	CartSvc     CartService
	WishlistSvc WishlistService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders: []string{"Content-Type", "X-User-ID"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api", userMiddleware())
	{
		api.GET("/cart", getCartHandler(deps.CartSvc, logger))
		api.POST("/cart/items", addCartItemHandler(deps.CartSvc, logger))
		api.PATCH("/cart/items/:productId", updateCartItemHandler(deps.CartSvc, logger))
		api.DELETE("/cart/items", removeCartItemsHandler(deps.CartSvc, logger))
		api.GET("/cart/totals", cartTotalsHandler(deps.CartSvc, logger))
		api.POST("/cart/coupons", attachCouponHandler(deps.CartSvc, logger))
		api.DELETE("/cart/coupons/:code", detachCouponHandler(deps.CartSvc, logger))

		api.GET("/wishlist", getWishlistHandler(deps.WishlistSvc, logger))
		api.POST("/wishlist/items", addWishlistItemHandler(deps.WishlistSvc, logger))
		api.DELETE("/wishlist/items", removeWishlistItemHandler(deps.WishlistSvc, logger))
	}

	return router
}
