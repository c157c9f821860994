package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/leongcheekhan100/hk-screener/config"
	"github.com/leongcheekhan100/hk-screener/logger"
	"github.com/leongcheekhan100/hk-screener/service/positions"
	"github.com/leongcheekhan100/hk-screener/service/screener"
)

func main() {
	cmd := &cli.Command{
		Name:  "hk-screener",
		Usage: "screen Binance USDT-M perpetuals by FDV and Q4 bounce",
		Commands: []*cli.Command{
			{
				Name:   "screen",
				Usage:  "run the screener and print the report",
				Action: screen,
			},
			{
				Name:   "serve",
				Usage:  "serve the screener dashboard over HTTP",
				Action: router,
			},
			{
				Name:   "positions",
				Usage:  "report open futures positions with funding-adjusted PnL",
				Action: track,
			},
		},
		// Bare invocation behaves like "screen".
		Action: screen,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func screen(ctx context.Context, _ *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	rep, err := screener.New(cfg, zlog).Run(ctx)
	if err != nil {
		return err
	}

	screener.PrintReport(os.Stdout, rep)
	screener.PrintScriptFragment(os.Stdout, rep)
	return nil
}

func track(ctx context.Context, _ *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Binance.APIKey == "" || cfg.Binance.SecretKey == "" {
		return errors.New("positions requires binance api credentials (BINANCE_API_KEY / BINANCE_API_SECRET)")
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	rep, err := positions.New(cfg, zlog).Run(ctx)
	if err != nil {
		return err
	}

	positions.PrintReport(os.Stdout, rep)
	return positions.SaveDashboard(cfg.Positions.DataFile, rep)
}
