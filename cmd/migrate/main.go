package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"

	"github.com/spoonful-labs/recipeshare/internal/database"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	// Fail early with a clear message when the database is unreachable.
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	db.Close()

	m, err := database.NewMigrator(dsn)
	if err != nil {
		log.Fatalf("failed to create migrator: %v", err)
	}
	defer m.Close()

	if *rollback {
		if err := m.Steps(-1); err != nil {
			log.Fatalf("failed to rollback migration: %v", err)
		}
		log.Println("Rolled back one migration")
		return
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Println("No pending migrations")
			return
		}
		log.Fatalf("failed to apply migrations: %v", err)
	}
	log.Println("Migrations applied")
}
