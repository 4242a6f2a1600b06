package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"

	"github.com/linkreg/linkreg/internal/config"
	"github.com/linkreg/linkreg/internal/handler"
	"github.com/linkreg/linkreg/internal/middleware"
	"github.com/linkreg/linkreg/internal/repository"
	"github.com/linkreg/linkreg/internal/service"
	"github.com/linkreg/linkreg/pkg/cache"
	"github.com/linkreg/linkreg/pkg/idgen"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}

	repo := repository.NewLinkRepository(db)

	if cfg.InitSchema {
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("schema init failed: %v", err)
		}
	}

	// Redis is optional: without it the service runs with the in-process
	// cache only and the random code generator.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:        cfg.RedisAddr,
			DialTimeout: 5 * time.Second,
			ReadTimeout: 3 * time.Second,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis ping failed, continuing without it: %v", err)
			redisClient = nil
		} else {
			defer func() {
				_ = redisClient.Close()
			}()
		}
	}

	var gen idgen.Generator
	switch cfg.CodeGenerator {
	case config.GeneratorCounter:
		if redisClient == nil {
			log.Fatal("CODE_GENERATOR=counter requires a reachable REDIS_ADDR")
		}
		gen = idgen.NewCounterGenerator(redisClient)
	case config.GeneratorRandom:
		gen = idgen.NewRandomGenerator()
	default:
		log.Fatalf("unknown CODE_GENERATOR %q", cfg.CodeGenerator)
	}

	var l2 *cache.RedisCache
	if redisClient != nil {
		l2 = cache.NewRedisCache(redisClient, cfg.CacheTTL)
	}

	svc := service.NewLinkService(repo, gen, cache.NewLRUCache(cfg.CacheSize), l2)
	handlers := handler.NewLinkHandler(svc)
	router := handler.NewRouter(handlers)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.Metrics(router),
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
