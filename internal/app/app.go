package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/AhmedSalem104/voltyks/internal/cleanup"
	"github.com/AhmedSalem104/voltyks/internal/config"
	"github.com/AhmedSalem104/voltyks/internal/handlers"
	"github.com/AhmedSalem104/voltyks/internal/notify"
	"github.com/AhmedSalem104/voltyks/internal/pg"
	"github.com/AhmedSalem104/voltyks/internal/push"
	"github.com/AhmedSalem104/voltyks/internal/ratingwindow"
	"github.com/AhmedSalem104/voltyks/internal/repo"
	"github.com/AhmedSalem104/voltyks/internal/service"
	"github.com/AhmedSalem104/voltyks/internal/service/processservice"
	"github.com/AhmedSalem104/voltyks/internal/throttle"
	"github.com/AhmedSalem104/voltyks/pkg/auth"
	"github.com/AhmedSalem104/voltyks/pkg/clients"
	"github.com/AhmedSalem104/voltyks/pkg/logger"
)

const notifyQueueSize = 256

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

// Poller is a background job that runs until its context is done.
type Poller interface {
	Run(ctx context.Context)
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	resolver Poller
	cleaner  Poller

	closers []func() error
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.addCloser(func() error {
		pool.Close()
		return nil
	})
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	throttleStore, err := a.newThrottle(cfg)
	if err != nil {
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	dispatcher, closeDispatcher, err := newDispatcher(cfg)
	if err != nil {
		return fmt.Errorf("can't build push dispatcher: %w", err)
	}
	a.addCloser(closeDispatcher)

	workerPool := notify.NewWorkerPool(cfg.NotifyWorkers, notifyQueueSize)
	a.addCloser(func() error {
		workerPool.Close()
		return nil
	})

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	notifier := notify.New(a.repo.NotificationRepo, a.repo.UserRepo, dispatcher, workerPool)
	a.srv = service.New(txManager, a.repo, notifier, throttleStore)
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret))
	a.resolver = ratingwindow.New(txManager, a.repo.Lifecycle(), notifier, cfg.RatingPollInterval, cfg.RatingWindow)
	a.cleaner = cleanup.New(a.repo.ProcessRepo, a.repo.UserRepo, a.srv.Terminator, cfg.CleanupPollInterval, cfg.ProcessTimeout)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startPoller(ctx, a.resolver)
	a.startPoller(ctx, a.cleaner)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// newThrottle connects to Redis when an address is configured. Without one
// the pairing throttle is not cleared.
func (a *Application) newThrottle(cfg *config.Config) (processservice.Throttle, error) {
	if cfg.RedisAddr == "" {
		zap.L().Info("redis address is not set, pairing throttle disabled")
		return nil, nil
	}
	client, err := throttle.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}
	a.addCloser(client.Close)
	return throttle.NewStore(client), nil
}

func newDispatcher(cfg *config.Config) (notify.Dispatcher, func() error, error) {
	noop := func() error { return nil }
	switch cfg.PushBackend {
	case config.PushBackendFCM:
		return push.NewFCM(cfg.FCMEndpoint, cfg.FCMServerKey, clients.NewHTTPClient()), noop, nil
	case config.PushBackendAMQP:
		publisher, err := push.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, nil, err
		}
		return publisher, publisher.Close, nil
	case config.PushBackendLog:
		return push.NewLog(), noop, nil
	}
	return nil, nil, fmt.Errorf("unsupported push backend: %s", cfg.PushBackend)
}

func (a *Application) addCloser(fn func() error) {
	a.closers = append(a.closers, fn)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startPoller(ctx context.Context, p Poller) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		p.Run(ctx)
	}()
}

// Wait blocks until ctx is done or a component fails, waits for every
// goroutine and then releases the shared resources in reverse order.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zap.L().Error("failed to release resource", zap.Error(err))
			if appErr == nil {
				appErr = err
			}
		}
	}
	a.closers = nil

	return appErr
}
