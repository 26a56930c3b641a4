package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/pixelport/go-framer/cli"
)

const appName = "go-framer"

func main() {
	rootCmd := cli.New()

	if err := rootCmd.Execute(); err != nil {
		log.WithFields(
			log.Fields{
				"app.name": appName,
				"error":    err.Error(),
			},
		).Error("application exited with an error")
		os.Exit(cli.ExitCode(err))
	}
}
