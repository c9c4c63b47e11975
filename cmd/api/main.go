package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-habit-dashboard/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/config"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/services"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/workers"
)

type app struct {
	router *gin.Engine
	worker *workers.StatsWorker
}

// newApp wires the dependency graph. rdb may be nil.
func newApp(cfg config.Config, rdb *redis.Client, startTime time.Time) *app {
	boardRepo := repository.NewInMemoryBoardRepository()

	var statsCache services.StatsCache
	if rdb != nil {
		statsCache = cache.NewRedisStatsCache(rdb, cfg.CacheTTL)
	} else {
		statsCache = cache.NewMemoryStatsCache(cache.DefaultMemoryEntries)
	}

	statsService := services.NewStatsService(boardRepo, statsCache)
	statsWorker := workers.NewStatsWorker(boardRepo, statsService, cfg.WorkerQueueSize)

	boardService := services.NewBoardService(boardRepo, statsWorker, services.BoardDefaults{
		PeriodLength:  cfg.PeriodLength,
		Capacity:      cfg.HabitCapacity,
		DayNameOffset: cfg.DayNameOffset,
	})

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		BoardHandler: adapterHTTP.NewBoardHandler(boardService),
		StatsHandler: adapterHTTP.NewStatsHandler(statsService),
		Redis:        rdb,
		RateLimit:    cfg.RateLimit,
		RateWindow:   cfg.RateWindow,
		StartTime:    startTime,
	})

	return &app{router: router, worker: statsWorker}
}

// @title        Kanso Habit Dashboard API
// @version      1.0
// @description  Monthly habit grid with completion analytics.
// @host         localhost:8080
// @BasePath     /api/v1
func main() {
	startTime := time.Now()
	cfg := config.Load()

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		log.Println("Connecting to redis...")

		var err error
		rdb, err = cache.NewRedisClient(context.Background(), cache.RedisOptions{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Fatalf("Critical: %v", err)
		}
		defer rdb.Close()

		log.Println("Redis connected successfully.")
	} else {
		log.Println("REDIS_HOST not set: using in-process statistics cache, rate limiting disabled.")
	}

	a := newApp(cfg, rdb, startTime)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	a.worker.Start(workerCtx)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Kanso Habit Dashboard running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
	}

	stopWorker()
	select {
	case <-a.worker.Done():
	case <-ctx.Done():
		log.Println("Worker did not stop in time.")
	}

	log.Println("Server stopped gracefully.")
}
