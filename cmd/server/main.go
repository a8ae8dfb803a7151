package main

import (
	"log"

	"github.com/foundersdir/internal/config"
	"github.com/foundersdir/internal/db"
	"github.com/foundersdir/internal/handler"
	"github.com/foundersdir/internal/router"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	api := handler.NewAPI(db.DB, handler.Options{
		EnrichBaseURL:       cfg.EnrichBaseURL,
		DeletePassphrase:    cfg.DeletePassphrase,
		PlaceholderImageURL: cfg.PlaceholderImageURL,
	})

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
