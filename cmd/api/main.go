package main

import (
	"context"
	"log"

	"github.com/robolog-viz/robolog-backend/config"
	"github.com/robolog-viz/robolog-backend/internal/bootstrap"
)

const serviceName = "robolog-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	rdb, err := bootstrap.OpenRedis(context.Background(), bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:   serviceName,
		Version:       cfg.App.Version,
		Redis:         rdb,
		DocTTL:        cfg.Upload.DocTTL,
		RatePerSec:    cfg.Upload.RatePerSec,
		RateBurst:     cfg.Upload.RateBurst,
		UploadMaxByte: cfg.Upload.MaxBytes,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
