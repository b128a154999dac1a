package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/netinventorypro/netinventorypro/api/router"
	"github.com/netinventorypro/netinventorypro/internal/config"
	"github.com/netinventorypro/netinventorypro/internal/database"
	"github.com/netinventorypro/netinventorypro/internal/service"
	"github.com/netinventorypro/netinventorypro/pkg/logger"

	// 注册各平台解析插件
	_ "github.com/netinventorypro/netinventorypro/addone/parse/platforms/cisco_ios"
	_ "github.com/netinventorypro/netinventorypro/addone/parse/platforms/cisco_nxos"
	_ "github.com/netinventorypro/netinventorypro/addone/parse/platforms/hirschmann_hios"
	_ "github.com/netinventorypro/netinventorypro/addone/parse/platforms/juniper_junos"
)

func main() {
	// 加载配置
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Infof("Starting NetInventory Pro Server, collector_id=%s concurrent=%d",
		cfg.Collector.ID, cfg.Collector.Concurrent)

	// 初始化数据库
	if err := database.InitSQLite(cfg.Database.SQLite); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// 创建采集器
	collector := service.NewInventoryCollector(cfg, service.NewSSHCommandRunner(cfg))

	// 配置文件热更新
	config.Watch(func(newCfg *config.Config) {
		*cfg = *newCfg
		_ = logger.Init(logger.Config{
			Level:      cfg.Log.Level,
			Format:     cfg.Log.Format,
			Output:     cfg.Log.Output,
			FilePath:   cfg.Log.FilePath,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		})
		logger.Info("Config reloaded")
	})

	// 设置路由
	r := router.SetupRouter(collector)

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        r,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		logger.Infof("Server starting on %s, mode=%s", server.Addr, cfg.Server.Mode)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}
