package main

import (
	"log"

	"github.com/selahapp/selah/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("selah failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("selah failed: %v", err)
	}
}
