package main

import (
	"os"

	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/app"
	log "github.com/sirupsen/logrus"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Errorf("failed to shut down cleanly: %v", err)
		}
	}()
	if err := application.Run(); err != nil {
		log.Fatal(err)
	}
}
