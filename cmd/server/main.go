// Package main implements the entry point for the task hub API server,
// which handles user registration, authentication, and per-user task
// management.
package main

import (
	"context"
	"flag"
	"log"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up|down|status) and exit")
	flag.Parse()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrations(app.db, *migrateCmd); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		app.cleanup()
		return
	}

	// Apply pending migrations before serving.
	if err := runMigrations(app.db, "up"); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
