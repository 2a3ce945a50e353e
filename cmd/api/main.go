package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopcart/internal/config"
	"shopcart/internal/db"
	"shopcart/internal/httpserver"
	"shopcart/internal/pricing"
	addressrepo "shopcart/internal/repository/address"
	cartrepo "shopcart/internal/repository/cart"
	couponrepo "shopcart/internal/repository/coupon"
	productrepo "shopcart/internal/repository/product"
	wishlistrepo "shopcart/internal/repository/wishlist"
	cartsvc "shopcart/internal/service/cart"
	wishlistsvc "shopcart/internal/service/wishlist"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	wishlistRepo := wishlistrepo.NewPostgres(dbpool)
	couponRepo := couponrepo.NewPostgres(dbpool)
	addressRepo := addressrepo.NewPostgres(dbpool)

	aggregator := pricing.NewAggregator(cfg.Pricing, addressRepo, logger)
	cartService := cartsvc.New(cartRepo, wishlistRepo, productRepo, couponRepo, aggregator, logger)
	wishlistService := wishlistsvc.New(wishlistRepo, productRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartSvc:     cartService,
		WishlistSvc: wishlistService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
