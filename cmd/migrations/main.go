package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/vncsmyrnk/pollsite/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/pollsite/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("a migration name is required.")
	}
	migrationName := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := postgres.Open(cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if migrationName == "all" {
		if err := postgres.ApplyMigrations(context.Background(), db); err != nil {
			log.Fatal(err)
		}
		fmt.Println("All up migrations executed successfully.")
		return
	}

	fileContent, err := postgres.Migration(migrationName)
	if err != nil {
		log.Fatal(err)
	}

	_, err = db.Exec(string(fileContent))
	if err != nil {
		log.Fatalf("Failed to execute SQL file: %v", err)
	}

	fmt.Println("Migration file executed successfully.")
}
