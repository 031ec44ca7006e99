package main

import (
	"os"

	"mneme-index/internal/cli"
	"mneme-index/internal/logger"
)

func main() {
	if err := cli.NewIndexerCommand().Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
