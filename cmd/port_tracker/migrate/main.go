package main

import (
	"port_tracker/internal/app/config"
	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/dsn"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	postgresString := dsn.FromEnv()
	db, err := gorm.Open(postgres.Open(postgresString), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	// Порядок миграций: сначала родители, потом ссылающиеся таблицы
	err = db.AutoMigrate(&ds.Ship{})
	if err != nil {
		logrus.Fatalf("error migrating ships: %v", err)
	}
	err = db.AutoMigrate(&ds.Port{})
	if err != nil {
		logrus.Fatalf("error migrating ports: %v", err)
	}
	err = db.AutoMigrate(&ds.CrewMember{})
	if err != nil {
		logrus.Fatalf("error migrating crew_members: %v", err)
	}
	err = db.AutoMigrate(&ds.Cargo{})
	if err != nil {
		logrus.Fatalf("error migrating cargoes: %v", err)
	}
	err = db.AutoMigrate(&ds.ShipVisit{})
	if err != nil {
		logrus.Fatalf("error migrating ship_visits: %v", err)
	}
	err = db.AutoMigrate(&ds.ShipCrewAssignment{})
	if err != nil {
		logrus.Fatalf("error migrating ship_crew_assignments: %v", err)
	}

	logrus.Info("Database migration completed")
}
