package main

import (
	"fmt"
	"os"

	"toptracks/internal/actions"
	"toptracks/internal/config"
	"toptracks/internal/logger"
	"toptracks/internal/utils"

	"go.uber.org/zap"
)

func main() {
	env := config.Load()

	log := logger.New(env.LogLevel, env.LogFile)
	defer func() { _ = log.Sync() }()

	runner := &actions.Runner{
		Logger:      log,
		Stdout:      os.Stdout,
		Interactive: utils.IsInteractive(),
	}

	err := actions.NewApp(runner).Run(os.Args)
	if err != nil {
		log.Debug("Command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		_ = log.Sync()
		os.Exit(1)
	}
}
