package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dtroode/gophfeed-server/database"
	httpctx "github.com/dtroode/gophfeed-server/internal/api/http/context"
	"github.com/dtroode/gophfeed-server/internal/api/http/router"
	httpServer "github.com/dtroode/gophfeed-server/internal/api/http/server"
	"github.com/dtroode/gophfeed-server/internal/config"
	"github.com/dtroode/gophfeed-server/internal/lease"
	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
	"github.com/dtroode/gophfeed-server/internal/password"
	"github.com/dtroode/gophfeed-server/internal/repository/memory"
	"github.com/dtroode/gophfeed-server/internal/repository/postgres"
	"github.com/dtroode/gophfeed-server/internal/server"
	"github.com/dtroode/gophfeed-server/internal/service"
	blobs "github.com/dtroode/gophfeed-server/internal/storage/memory"
	storage "github.com/dtroode/gophfeed-server/internal/storage/minio"
	"github.com/dtroode/gophfeed-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type stores struct {
	users  model.UserStore
	posts  model.PostStore
	ledger model.LedgerStore
	close  func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	st, err := openStores(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize persistence", "error", err)
	}
	defer st.close()

	blobStorage, err := openBlobStorage(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize object storage", "error", err)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewBcrypt(cfg.Password.Cost)

	sessionService := service.NewSession(tokenManager, st.users, logger.With("component", "session"))
	accountService := service.NewAccount(st.users, st.posts, blobStorage, hasher, sessionService, logger.With("component", "account"))
	postService := service.NewPost(st.posts, st.users, blobStorage, logger.With("component", "post"))
	likeService := service.NewLike(st.users, st.posts, logger.With("component", "like"))

	var wg sync.WaitGroup

	if cfg.Reconcile.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		var sweepLease model.Lease
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, reconciliation sweeps run without lease", "error", err)
		} else {
			sweepLease = lease.NewRedis(redisClient)
		}

		reconciler := service.NewReconciler(st.ledger, sweepLease, cfg.Reconcile.LeaseTTL, logger.With("component", "reconciler"))
		wg.Add(1)
		go func() {
			defer wg.Done()
			reconciler.Run(ctx, cfg.Reconcile.Interval)
		}()
	}

	r := router.New(
		accountService,
		sessionService,
		postService,
		likeService,
		sessionService,
		httpctx.NewManager(),
		cfg.HTTP.AllowedOrigins,
		logger.With("component", "http"),
	)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func openStores(ctx context.Context, cfg config.Database) (*stores, error) {
	if cfg.InMemory {
		db := memory.New()
		return &stores{users: db.Users(), posts: db.Posts(), ledger: db.Ledger(), close: func() {}}, nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.Open(cfg.DSN)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &stores{
		users:  postgres.NewUserRepository(conn),
		posts:  postgres.NewPostRepository(conn),
		ledger: postgres.NewLedgerRepository(sqlDB),
		close: func() {
			_ = sqlDB.Close()
			_ = conn.Close()
		},
	}, nil
}

func openBlobStorage(ctx context.Context, cfg config.Storage) (model.Storage, error) {
	if cfg.InMemory {
		return blobs.New(), nil
	}

	client, err := storage.Dial(ctx, storage.Options{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}
