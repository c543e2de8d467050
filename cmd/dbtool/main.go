// Command dbtool prepares the PostgreSQL database of the delivery-time service.
//
//	dbtool create          create DB_NAME if it does not exist
//	dbtool migrate         create or update the tables
//	dbtool seed <file>     load rule definitions from a YAML file
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"deliverytime/cmd"
	"deliverytime/internal/adapters/out/postgres/orderrepo"
	"deliverytime/internal/adapters/out/postgres/rulerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	configs, err := cmd.NewConfig()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "create":
		err = createDatabase(ctx, configs)
	case "migrate":
		err = migrate(configs)
	case "seed":
		if len(os.Args) < 3 {
			usage(os.Stderr)
			os.Exit(2)
		}
		err = seedRules(ctx, configs, os.Args[2])
	default:
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s failed: %v", os.Args[1], err)
	}
}

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "usage: dbtool create | migrate | seed <file>")
}

func createDatabase(ctx context.Context, configs cmd.Config) error {
	db, err := sql.Open("postgres", configs.DSNFor("postgres"))
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).
		Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		log.Infof("Database %s already exists", configs.DBName)
		return nil
	}

	if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(configs.DBName)); err != nil {
		return err
	}
	log.Infof("Database %s created", configs.DBName)
	return nil
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	return gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
}

func migrate(configs cmd.Config) error {
	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}

	if err = gormDB.AutoMigrate(&rulerepo.RuleDTO{}, &orderrepo.OrderDTO{}); err != nil {
		return err
	}
	log.Info("Schema ready")
	return nil
}

func seedRules(ctx context.Context, configs cmd.Config, path string) error {
	if err := migrate(configs); err != nil {
		return err
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}

	location, err := configs.Location()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	app := cmd.NewCompositionRoot(configs, gormDB, location, logger)

	result, err := app.CreateRuleSeeder().SeedFile(ctx, path)
	if err != nil {
		return err
	}
	log.Infof("Seeding complete: %d created, %d skipped", result.Created, result.Skipped)
	return nil
}

