package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/selahapp/selah/internal/annotations"
	"github.com/selahapp/selah/internal/auth"
	"github.com/selahapp/selah/internal/config"
	"github.com/selahapp/selah/internal/httpserver"
	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/migration"
	"github.com/selahapp/selah/internal/plan"
	"github.com/selahapp/selah/internal/redis"
	"github.com/selahapp/selah/internal/scripture"
	"github.com/selahapp/selah/internal/session"
	"github.com/selahapp/selah/internal/store/local"
	"github.com/selahapp/selah/internal/store/remote"
	"github.com/selahapp/selah/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	localStore  *local.Store
	remoteStore *remote.Store
	redisClient *goredis.Client
}

func New() (*App, error) {
	cfg := config.Load()
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	ctx := context.Background()

	// The device store is always present; without it nothing works.
	localStore, err := local.Open(cfg.DataDir, loggerClient)
	if err != nil {
		return nil, fmt.Errorf("failed to open device store: %w", err)
	}

	// The remote store is optional. Without it the app runs in
	// signed-out mode only.
	var remoteStore *remote.Store
	var sessionMgr *session.Manager
	var migrator *migration.Coordinator
	if cfg.DatabaseURL != "" {
		remoteStore, err = remote.New(ctx, cfg.DatabaseURL, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to sync backend: %w", err)
		}
		if err := remoteStore.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare sync schema: %w", err)
		}
		loggerClient.Info("sync backend connected")

		tokens := auth.NewTokens(cfg.TokenSecret, cfg.TokenTTL)
		sessionMgr = session.NewManager(remoteStore, tokens, localStore, loggerClient)
		migrator = migration.New(localStore, remoteStore, loggerClient)
	} else {
		loggerClient.Info("no sync backend configured, running local-only")
	}

	// The chapter cache is optional too.
	var redisClient *goredis.Client
	var chapterCache *scripture.Cache
	if cfg.RedisAddr != "" {
		redisClient, err = redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDialTimeout,
			ReadTimeout:    cfg.RedisReadTimeout,
			WriteTimeout:   cfg.RedisWriteTimeout,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			// The cache is an optimization, not a dependency.
			loggerClient.Warn("chapter cache unavailable, serving from files only",
				logger.Error(err))
		} else {
			chapterCache = scripture.NewCache(redisClient, cfg.CacheTTL, loggerClient)
		}
	}

	plans, err := plan.Load(cfg.PlanFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load reading plans: %w", err)
	}

	var sessionSource annotations.Source = anonymous{}
	var progressSource plan.Source = anonymous{}
	if sessionMgr != nil {
		sessionSource = sessionMgr
		progressSource = sessionMgr
	}

	favorites := annotations.NewFavorites(localStore, remoteStore, sessionSource, loggerClient)
	highlights := annotations.NewHighlights(localStore, remoteStore, sessionSource, loggerClient)
	notes := annotations.NewNotes(localStore, remoteStore, sessionSource, loggerClient)

	tracker := plan.NewTracker()
	progress := plan.NewProgress(plans, tracker, localStore, remoteStore, progressSource, loggerClient)
	provider := scripture.NewProvider(cfg.ScriptureDir, chapterCache, loggerClient)

	reload := func(ctx context.Context) {
		favorites.Load(ctx)
		highlights.Load(ctx)
		notes.Load(ctx)
	}

	// Resume a persisted session before the first load so the services
	// start on the right backend.
	if sessionMgr != nil {
		sessionMgr.Restore(ctx)
	}
	reload(ctx)

	d := deps.Deps{
		Logger:     loggerClient,
		StartTime:  time.Now(),
		Version:    version.Version,
		Commit:     version.Commit,
		BuildDate:  version.BuildDate,
		GoVersion:  version.GoVersion,
		TimeNow:    time.Now,
		Favorites:  favorites,
		Highlights: highlights,
		Notes:      notes,
		Progress:   progress,
		Scripture:  provider,
		Local:      localStore,
		Session:    sessionMgr,
		Migrator:   migrator,
		Reload:     reload,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		localStore:  localStore,
		remoteStore: remoteStore,
		redisClient: redisClient,
	}, nil
}

// anonymous is the session source used when no sync backend is configured.
type anonymous struct{}

func (anonymous) Owner() (string, bool) { return "", false }

func (a *App) Run() error {
	a.logger.Infof("Starting Selah v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Selah %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}
	if a.remoteStore != nil {
		a.remoteStore.Close()
	}
	if err := a.localStore.Close(); err != nil {
		a.logger.Warnf("failed to close device store: %v", err)
	}

	a.logger.Info("Selah stopped cleanly")
	return nil
}
