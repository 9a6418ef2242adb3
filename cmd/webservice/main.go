package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/minimarket/marketplace-service/config"
	"github.com/minimarket/marketplace-service/internal/app"

	postgresDriver "github.com/minimarket/marketplace-service/internal/infrastructure/database/postgres"
)

func main() {
	var seed bool
	flag.BoolVar(&seed, "seed", false, "create the demo account and sample listings if absent")
	flag.Parse()

	config := config.CreateNewConfig()
	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	if err := postgresDriver.RunMigrations(db, config.MigrationsSource); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if seed {
		if err := seedDemoData(db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	server := app.App{
		DB:     db,
		Config: config,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		if err := server.StopServer(); err != nil {
			log.Printf("Failed to shut down server: %v", err)
		}
	}()

	server.Start()
}
