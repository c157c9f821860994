package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/leongcheekhan100/hk-screener/config"
)

// New builds a zap.Logger from the log section of the config.
//
// Diagnostics go to stderr so the report itself owns stdout; an optional
// rotated file core is added when output_file is set.
func New(opts config.LogConfig) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(opts.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	var consoleEnc zapcore.Encoder
	if opts.Environment == "dev" || opts.Format == "console" {
		consoleEnc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		consoleEnc = zapcore.NewJSONEncoder(encoderCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stderr), lvl),
	}

	if opts.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.OutputFile), 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.OutputFile,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     7, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), fileWriter, lvl))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
