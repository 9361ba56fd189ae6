// Command migrate applies or rolls back the score snapshot schema without
// starting the API.
package main

import (
	"flag"
	"log"

	"travelquote/cfg"
	"travelquote/pkg/db"
	"travelquote/pkg/logger"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of applying")
	flag.Parse()

	// ============
	// Load config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}
	zlogger := logger.NewZeroLog(config.AppEnv)

	pg := config.Postgres
	if !pg.Enabled() {
		log.Fatal("POSTGRES_HOST is required")
	}
	pgDSN := db.PostgresDSN(pg.User, pg.Password, pg.Host, pg.Port, pg.DBName, pg.SSLMode)

	// =========
	// Migrate
	// =========
	if *down > 0 {
		if err := db.Rollback(pg.MigrationsPath, pgDSN, *down); err != nil {
			log.Fatal(err)
		}
		zlogger.Info("migrations rolled back", logger.Field{Key: "steps", Value: *down})
		return
	}

	if err := db.Migrate(pg.MigrationsPath, pgDSN); err != nil {
		log.Fatal(err)
	}
	zlogger.Info("migrations applied", logger.Field{Key: "source", Value: pg.MigrationsPath})
}
