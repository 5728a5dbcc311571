package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/STTM-NSU/forex-cli/internal/cli"
	"github.com/STTM-NSU/forex-cli/internal/config"
	"github.com/STTM-NSU/forex-cli/internal/logger"
	"github.com/STTM-NSU/forex-cli/internal/oanda"
	"github.com/joho/godotenv"
)

const (
	_cfgFilePath = "./configs/forex.yaml"
)

func main() {
	os.Exit(run())
}

func run() int {
	envErr := godotenv.Load()

	cfg, err := config.Load(_cfgFilePath)
	if err != nil {
		log.Printf("%s: can't load config", err)
		return 1
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if slices.Contains(os.Args[1:], "--verbose") {
		level = logger.Debug
	}
	zapLogger, loggerSync, err := logger.NewZapLogger(level)
	if err != nil {
		log.Printf("%s: can't init logger", err)
		return 1
	}
	defer loggerSync()

	if envErr != nil {
		zapLogger.Debugf("can't detect .env file")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := oanda.NewClient(cfg.Oanda, zapLogger)
	if err := cli.NewRootCommand(client, cfg, zapLogger).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var inputErr *cli.UserInputError
		if errors.As(err, &inputErr) {
			fmt.Fprintln(os.Stderr, "Run 'forex --help' for usage.")
		}
		return 1
	}
	return 0
}
