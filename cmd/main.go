package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/koskimas/openapi2beans/internal/cmd"
)

func main() {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal("failed to determine working directory")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = cmd.Run(ctx, cmd.Settings{
		WorkingDir: wd,
		Args:       os.Args[1:],
	})

	if err != nil {
		stop()
		os.Exit(1)
	}
}
