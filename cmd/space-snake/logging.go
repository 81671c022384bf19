package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName   = "space-snake.log"
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 7
)

// setupLogging returns a file logger under dir when debug is set and a no-op logger otherwise
// The terminal owns stdout and stderr while the game runs, so logs never go there
func setupLogging(debug bool, dir string) (*zap.SugaredLogger, func(), error) {
	if !debug {
		return zap.NewNop().Sugar(), func() {}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), zapcore.DebugLevel)
	logger := zap.New(core, zap.AddCaller()).Sugar()

	cleanup := func() {
		_ = logger.Sync()
		_ = lj.Close()
	}
	return logger, cleanup, nil
}
