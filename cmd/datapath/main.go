package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := RootCmd.Execute(); err != nil {
		if !errors.Is(err, errNotFound) {
			log.WithError(err).Error("datapath failed")
		}
		os.Exit(1)
	}
}
