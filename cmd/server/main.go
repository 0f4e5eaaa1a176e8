package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cargopanel/dashboard-gateway/internal/api"
	"github.com/cargopanel/dashboard-gateway/internal/api/metrics"
	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
	"github.com/cargopanel/dashboard-gateway/internal/core/routes"
	"github.com/cargopanel/dashboard-gateway/internal/core/service"
	"github.com/cargopanel/dashboard-gateway/internal/core/session"
	"github.com/cargopanel/dashboard-gateway/internal/fetch"
	"github.com/cargopanel/dashboard-gateway/internal/gateway"
	"github.com/cargopanel/dashboard-gateway/internal/infrastructure/config"
	mongodb "github.com/cargopanel/dashboard-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/cargopanel/dashboard-gateway/internal/infrastructure/db/redis"
	"github.com/cargopanel/dashboard-gateway/pkg/debounce"
	"github.com/cargopanel/dashboard-gateway/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	reloginDelay    = 2 * time.Second
	reloginTimeout  = 30 * time.Second
	tokenTTL        = 24 * time.Hour
)

// reloginNavigator turns the session store's forced move to the login route
// into a debounced backend re-login. The debouncer is bound after the store
// and gateway exist; navigations before that are dropped.
type reloginNavigator struct {
	mu sync.Mutex
	d  *debounce.Debouncer
}

func (n *reloginNavigator) NavigateTo(path string) {
	if path != session.LoginPath {
		return
	}
	n.mu.Lock()
	d := n.d
	n.mu.Unlock()
	if d != nil {
		d.Call()
	}
}

func (n *reloginNavigator) bind(d *debounce.Debouncer) {
	n.mu.Lock()
	n.d = d
	n.mu.Unlock()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// The session store rehydrates from Redis, so a restart keeps the last
	// backend session and language.
	nav := &reloginNavigator{}
	store := session.NewStore(redisdb.NewSessionRepository(rdb), nav, logger.Component("session"))
	store.Subscribe(func(sess domain.Session) {
		if sess.IsAuthenticated() {
			metrics.BackendSessionAuthenticated.Set(1)
		} else {
			metrics.BackendSessionAuthenticated.Set(0)
		}
	})

	client, err := gateway.NewClient(cfg.Backend.BaseURL, store, store.Logout, gateway.Options{
		Timeout: cfg.Backend.Timeout,
		Logger:  logger.Component("gateway"),
	})
	if err != nil {
		return err
	}

	backendAuth := service.NewBackendAuthService(client, store, cfg.Backend.Username, cfg.Backend.Password, logger.Component("backend-auth"))

	// A 401 storm logs out once and re-logs-in once: the logout navigation
	// lands here and the debouncer coalesces the burst.
	relogin := debounce.New(reloginDelay, func() {
		loginCtx, cancel := context.WithTimeout(context.Background(), reloginTimeout)
		defer cancel()
		if err := backendAuth.Login(loginCtx); err != nil {
			log.Warn().Err(err).Msg("backend re-login failed")
		}
	})
	defer relogin.Stop()
	nav.bind(relogin)

	cache := fetch.NewCache(cfg.Backend.CacheMaxAge)
	fetcher := fetch.NewFetcher(cache, client, logger.Component("fetch"))
	resources := service.NewResourceService(fetcher, client, logger.Component("resources"))
	authService := service.NewAuthService(mongodb.NewAuthRepository(db), cfg.JWTSecret, tokenTTL)
	gate := routes.NewGate(routes.Table())

	if !store.Current().IsAuthenticated() {
		if err := backendAuth.Login(ctx); err != nil {
			// Not fatal: the first proxied request's 401 path retries.
			log.Warn().Err(err).Msg("initial backend login failed")
		}
	}

	e := api.NewRouter(api.Deps{
		Mongo:       db,
		Redis:       rdb,
		JWTSecret:   cfg.JWTSecret,
		AuthService: authService,
		Resources:   resources,
		Store:       store,
		BackendAuth: backendAuth,
		Gate:        gate,
		Logger:      log,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("dashboard gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
