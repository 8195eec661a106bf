package main

import (
	"basic_server/internal/bootstrap"
	"basic_server/internal/config"
	"basic_server/internal/logging"
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	conf, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	logger, err := logging.New(conf.LogLevel(), conf.LogFormat())
	if err != nil {
		log.Fatalf("Failed to create logger: %s", err)
	}

	if err = run(conf, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(conf config.Config, logger *zap.Logger) error {
	app, err := bootstrap.New(conf, logger)
	if err != nil {
		return err
	}
	return app.Run()
}
