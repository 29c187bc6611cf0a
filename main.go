package main

import (
	"errors"
	"io/fs"
	"os"

	"ovhwatch/internal/cli"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Error loading .env file: %v", err)
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
