package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/sjperalta/gestor-negocios-api/internal/config"
	"github.com/sjperalta/gestor-negocios-api/internal/database"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
)

const usage = `usage: migrate <up|down|version>

Applies the versioned PostgreSQL schema in DATABASE_URL.`

func main() {
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Setup(cfg.Environment, cfg.LogLevel)

	if !database.IsPostgresURL(cfg.DatabaseURL) {
		log.Fatal("Versioned migrations require a PostgreSQL DATABASE_URL; SQLite uses AUTO_MIGRATE")
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	m, err := database.NewMigrator(db)
	if err != nil {
		log.Fatalf("Failed to prepare migrations: %v", err)
	}

	switch flag.Arg(0) {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = m.Version()
		if err == nil {
			fmt.Printf("version=%d dirty=%t\n", version, dirty)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
