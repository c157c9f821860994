package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/leongcheekhan100/hk-screener/config"
	"github.com/leongcheekhan100/hk-screener/logger"
	"github.com/leongcheekhan100/hk-screener/service/positions"
	"github.com/leongcheekhan100/hk-screener/service/screener"
)

func router(_ context.Context, _ *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	s := screener.New(cfg, zlog)

	// Creates a gin router with default middleware:
	// logger and recovery (crash-free) middleware
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, screener.HtmlPage)
	})

	// Each request runs the full pipeline; the screener is slow (per-symbol
	// kline fetches) so this is meant for occasional manual refreshes, not
	// polling.
	router.GET("/api/report", func(c *gin.Context) {
		rep, err := s.Run(c.Request.Context())
		if err != nil {
			zlog.Error("screen failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rep)
	})

	// The account view only works with signed credentials; without them the
	// endpoint reports unavailable instead of failing each upstream call.
	router.GET("/api/positions", func(c *gin.Context) {
		if cfg.Binance.APIKey == "" || cfg.Binance.SecretKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "binance api credentials not configured"})
			return
		}
		rep, err := positions.New(cfg, zlog).Run(c.Request.Context())
		if err != nil {
			zlog.Error("track failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rep)
	})

	// By default it serves on :8080 unless a
	// PORT environment variable was defined.
	return router.Run()
}
