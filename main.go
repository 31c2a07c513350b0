package main

import (
	"log"

	"github.com/gonewx/spooky/pkg/app"
)

func main() {
	a, err := app.NewApp()
	if err != nil {
		log.Fatalf("[Main] Failed to initialize: %v", err)
	}

	if err := a.Run(); err != nil {
		log.Fatalf("[Main] %v", err)
	}
}
