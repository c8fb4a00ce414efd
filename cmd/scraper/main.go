package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-linkedin-scraper/cmd/scraper/commands"
)

func main() {
	//stop between jobs on Ctrl+C; rows written so far stay on disk
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.ExecuteContext(ctx)
}
