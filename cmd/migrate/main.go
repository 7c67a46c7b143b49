package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/tirtatarum/spk/internal/config"
	"github.com/tirtatarum/spk/internal/logger"
)

const defaultSchemaFile = "scripts/schema.sql"

func main() {
	schemaFile := flag.String("schema", defaultSchemaFile, "Path to the schema SQL file")
	dryRun := flag.Bool("dry-run", false, "Print the schema SQL without executing it")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	schema, err := os.ReadFile(*schemaFile)
	if err != nil {
		logger.Fatalw("Failed to read schema file", "path", *schemaFile, "error", err)
	}

	if *dryRun {
		fmt.Print(string(schema))
		return
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)
	db, err := sqlx.Connect("postgres", cfg.Postgres.GetDSN())
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	logger.Info("Applying schema...")
	if _, err := db.Exec(string(schema)); err != nil {
		logger.Fatalw("Failed to apply schema", "error", err)
	}

	logger.Info("Schema applied successfully")
}
