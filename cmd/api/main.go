package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omise/omise-go"

	"github.com/you/shoe-resale/internal/handlers"
	"github.com/you/shoe-resale/internal/middlewares"
	"github.com/you/shoe-resale/internal/repository"
	"github.com/you/shoe-resale/internal/service"
	"github.com/you/shoe-resale/pkg/config"
	"github.com/you/shoe-resale/pkg/db"
	"github.com/you/shoe-resale/pkg/mq"
	"github.com/you/shoe-resale/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())

	shutdownTracer := obs.InitTracer("shoe-resale-api")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracer(ctx)
	}()

	gdb := must(db.Open(cfg.PGDSN))
	defer func() { _ = db.Close(gdb) }()

	users := repository.NewUserRepo(gdb)
	shoes := repository.NewShoeRepo(gdb)
	adverts := repository.NewAdvertRepo(gdb)
	bookings := repository.NewBookingRepo(gdb)
	payments := repository.NewPaymentRepo(gdb)
	for _, m := range []interface{ Migrate() error }{users, shoes, adverts, bookings, payments} {
		must(0, m.Migrate())
	}

	omc := must(omise.NewClient(cfg.OmisePublicKey, cfg.OmiseSecretKey))

	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.EventExchange))
	defer pub.Close()

	userSvc := service.NewUserSvc(users, cfg.JWTSecret, time.Duration(cfg.JWTExpireHr)*time.Hour)
	catalogSvc := service.NewCatalogSvc(shoes, adverts, bookings)
	bookingSvc := service.NewBookingSvc(bookings, shoes, pub)
	chargeSvc := service.NewChargeSvc(omc, shoes, cfg.Currency)
	settlementSvc := service.NewSettlementSvc(payments, shoes, bookings, adverts, pub)

	uh := handlers.NewUserHandler(userSvc)
	sh := handlers.NewShoeHandler(catalogSvc, users)
	bh := handlers.NewBookingHandler(bookingSvc)
	ph := handlers.NewPaymentHandler(chargeSvc, settlementSvc)
	wh := handlers.NewWebhookHandler(omc, settlementSvc)

	r := gin.Default()
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.POST("/users", uh.Register)
	r.GET("/jwt", uh.IssueToken)
	r.GET("/users/admin/:email", uh.IsAdmin)
	r.GET("/users/seller/:email", uh.IsSeller)
	r.GET("/shoes/:id", sh.Get)
	r.GET("/advertised/:id", sh.IsAdvertised)
	r.POST("/webhooks/omise", wh.Handle)

	secured := r.Group("")
	secured.Use(middlewares.JWTAuth(cfg.JWTSecret))
	{
		secured.POST("/bookings", bh.Create)
		secured.DELETE("/bookings/:id", bh.Cancel)
		secured.POST("/payments/intent", ph.CreateIntent)
		secured.POST("/payments/confirm", ph.Confirm)

		seller := secured.Group("")
		seller.Use(middlewares.RequireSeller(userSvc))
		seller.POST("/shoes", sh.Create)
		seller.POST("/advertise", sh.Advertise)

		sellerOrAdmin := secured.Group("")
		sellerOrAdmin.Use(middlewares.RequireSellerOrAdmin(userSvc))
		sellerOrAdmin.DELETE("/shoes/:id", sh.Delete)

		admin := secured.Group("")
		admin.Use(middlewares.RequireAdmin(userSvc))
		admin.PUT("/users/admin/:id", uh.Promote)
		admin.DELETE("/users/:id", uh.Delete)
	}

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("[api] listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("[api] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api] shutdown: %v", err)
	}
}
