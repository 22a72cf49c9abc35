package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/announce"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/auth"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/catalog"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/daily"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/db"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/favorites"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/mailer"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/order"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/realtime"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/router"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/sides"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			logrus.Fatalf("missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		logrus.Fatal("R2 init failed: ", err)
	}

	// ───────────────────────── MAILER (OPTIONAL) ─────────────────────────
	var confirmationMailer order.Mailer
	if os.Getenv("SES_EMAIL") != "" {
		m, err := mailer.NewSESMailer(context.Background())
		if err != nil {
			logrus.Warn("SES init failed, confirmations disabled: ", err)
		} else {
			confirmationMailer = m
		}
	}

	// ───────────────────────── REPOSITORIES ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	dailyRepo := daily.NewPostgresRepository(pgDB)
	cartRepo := cart.NewPostgresRepository(pgDB)
	favoriteRepo := favorites.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	announceRepo := announce.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	authService := auth.NewService(userRepo)
	catalogService := catalog.NewService(catalogRepo, r2Client)
	dailyService := daily.NewService(dailyRepo, catalogRepo)
	resolver := sides.NewResolver(catalogService, dailyService)

	cartSessions := cart.NewSessions(cartRepo)
	favoriteService := favorites.NewService(favoriteRepo, catalogRepo)

	hub := realtime.NewHub()

	orderService := order.NewService(
		orderRepo,
		resolver,
		dailyService,
		cartSessions,
		hub,
		confirmationMailer,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	engine := router.New(router.Handlers{
		Auth:      auth.NewHandler(authService),
		Catalog:   catalog.NewHandler(catalogService),
		Sides:     sides.NewHandler(resolver, cartSessions),
		Daily:     daily.NewHandler(dailyService, cartSessions),
		Cart:      cart.NewHandler(cartSessions, catalogRepo),
		Favorites: favorites.NewHandler(favoriteService, cartSessions),
		Order:     order.NewHandler(orderService, cartSessions),
		Announce:  announce.NewHandler(announceRepo),
		Realtime:  realtime.NewHandler(hub),
	})

	// ───────────────────────── START ─────────────────────────
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	logrus.Info("API running at ", addr)
	if err := engine.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
