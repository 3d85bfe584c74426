// Command devserver runs the in-memory reference backend on the port
// from the environment. All data lives in memory and is reseeded on
// every start.
package main

import (
	"log"

	"github.com/voyagedesk/voyagedesk/internal/config"
	"github.com/voyagedesk/voyagedesk/internal/devserver"
	"github.com/voyagedesk/voyagedesk/internal/logging"
)

func main() {
	cfg := config.Load()

	closeLogs, err := logging.Setup(cfg.LogstashTCPAddr)
	if err != nil {
		log.Fatalf("logging setup: %v", err)
	}
	defer closeLogs()

	store := devserver.NewStore()
	if err := store.Seed(); err != nil {
		log.Fatalf("seed store: %v", err)
	}

	e := devserver.New(cfg, store)
	log.Printf("dev server listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
