package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MinterTeam/restaking-explorer/core"
	"github.com/MinterTeam/restaking-explorer/env"
	"github.com/MinterTeam/restaking-explorer/helpers"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		logrus.Info(".env file not found")
	}
	envData, err := env.New(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	helpers.HandleError(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	explorer := core.NewExplorer(envData)
	if err := explorer.Run(ctx); err != nil {
		logrus.Fatal(err)
	}
}
