package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/chynybekuuludastan/creator_toolkit/internal/database/migration"
	"github.com/chynybekuuludastan/creator_toolkit/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	migrateCmd := flag.Bool("migrate", false, "Run migrations")
	rollbackCmd := flag.Bool("rollback", false, "Rollback the last batch of migrations")
	resetCmd := flag.Bool("reset", false, "Rollback all migrations and re-run them")
	statusCmd := flag.Bool("status", false, "Show migration status")
	dsn := flag.String("dsn", os.Getenv("POSTGRES_URI"), "PostgreSQL connection string")
	flag.Parse()

	if !(*migrateCmd || *rollbackCmd || *resetCmd || *statusCmd) {
		flag.Usage()
		os.Exit(1)
	}
	if *dsn == "" {
		logger.Fatal("No database configured, pass -dsn or set POSTGRES_URI")
	}

	db, err := gorm.Open(postgres.Open(*dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Info),
	})
	if err != nil {
		logger.Fatal("Failed to connect to the database", "error", err)
	}

	migrator, err := migration.NewMigrator(db)
	if err != nil {
		logger.Fatal("Failed to prepare migrator", "error", err)
	}

	switch {
	case *migrateCmd:
		if err := migrator.Migrate(); err != nil {
			logger.Fatal("Migration failed", "error", err)
		}
		logger.Info("Migrations completed successfully")

	case *rollbackCmd:
		if err := migrator.Rollback(); err != nil {
			logger.Fatal("Rollback failed", "error", err)
		}
		logger.Info("Rollback completed successfully")

	case *resetCmd:
		if err := migrator.Reset(); err != nil {
			logger.Fatal("Reset failed", "error", err)
		}
		logger.Info("Reset completed successfully")

	case *statusCmd:
		status, err := migrator.GetStatus()
		if err != nil {
			logger.Fatal("Failed to get migration status", "error", err)
		}
		printStatus(status)
	}
}

func printStatus(status []migration.Status) {
	const border = "+-----------------------------------+----------+-------+---------------------+"
	fmt.Println(border)
	fmt.Println("| Migration                         | Applied? | Batch | Applied At          |")
	fmt.Println(border)

	for _, s := range status {
		applied, batch, appliedAt := "No", "-", "-"
		if s.Applied {
			applied = "Yes"
			batch = fmt.Sprintf("%d", s.Batch)
			appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("| %-33s | %-8s | %-5s | %-19s |\n", s.Name, applied, batch, appliedAt)
	}

	fmt.Println(border)
}
