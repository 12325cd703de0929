package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rakibhassannayem/clubSphere-server/internal/auth"
	"github.com/rakibhassannayem/clubSphere-server/internal/checkout"
	"github.com/rakibhassannayem/clubSphere-server/internal/config"
	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
	"github.com/rakibhassannayem/clubSphere-server/internal/handler"
	"github.com/rakibhassannayem/clubSphere-server/internal/middleware"
	"github.com/rakibhassannayem/clubSphere-server/internal/notification"
	"github.com/rakibhassannayem/clubSphere-server/internal/repository"
	"github.com/rakibhassannayem/clubSphere-server/internal/router"
	"github.com/rakibhassannayem/clubSphere-server/internal/scheduler"
	"github.com/rakibhassannayem/clubSphere-server/internal/service"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	mongo      *mongo.Client
	db         *mongo.Database
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ClubSphere",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(a.cfg.Mongo.URI).
		SetTimeout(a.cfg.Mongo.OpTimeout),
	)
	if err != nil {
		return fmt.Errorf("connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("pinging mongo: %w", err)
	}

	a.mongo = client
	a.db = client.Database(a.cfg.Mongo.Database)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongo connected",
		logger.String("database", a.cfg.Mongo.Database),
	)

	return nil
}

// ensureIndexes creates the unique indexes the reconciliation flow relies on:
// a duplicate transaction id must fail the insert, never produce a second
// ledger entry or grant.
func (a *App) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Mongo.ConnectTimeout)
	defer cancel()

	unique := options.Index().SetUnique(true)

	byTransaction := mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: unique,
	}

	for _, col := range []string{"payments", "memberShips", "eventRegistrations"} {
		if _, err := a.db.Collection(col).Indexes().CreateOne(ctx, byTransaction); err != nil {
			return fmt.Errorf("index %s.transactionId: %w", col, err)
		}
	}

	if _, err := a.db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("index users.email: %w", err)
	}

	a.log.Info("indexes ensured")
	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	clubRepo := repository.NewClubRepo(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	membershipRepo := repository.NewMembershipRepo(a.db)
	registrationRepo := repository.NewRegistrationRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	stripeCheckout := checkout.NewStripe(a.cfg.Stripe.SecretKey, a.cfg.Client.Origin)
	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	userService := service.NewUserService(userRepo)
	clubService := service.NewClubService(clubRepo, membershipRepo)
	eventService := service.NewEventService(eventRepo, clubRepo, registrationRepo)
	paymentService := service.NewPaymentService(
		stripeCheckout,
		paymentRepo,
		membershipRepo,
		registrationRepo,
		clubRepo,
		eventRepo,
		n,
		a.log,
	)

	a.scheduler = scheduler.New(
		paymentService,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.RepairWindow,
		a.log,
	)

	h := handler.NewHandler(paymentService, clubService, eventService, userService, tokens)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			Authenticate: middleware.Authenticate(tokens),
			Demo:         middleware.DemoGuard(a.cfg.Auth.DemoEmails),
			AdminOnly:    middleware.RequireRole(userService, domain.RoleAdmin),
			ManagerOnly:  middleware.RequireRole(userService, domain.RoleManager),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.mongo.Disconnect(shutdownCtx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongo connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
