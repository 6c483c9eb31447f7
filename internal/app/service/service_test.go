package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"
)

// newTestRepository - репозиторий поверх SQLite в памяти с миграцией схемы
func newTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&ds.Ship{},
		&ds.Port{},
		&ds.CrewMember{},
		&ds.Cargo{},
		&ds.ShipVisit{},
		&ds.ShipCrewAssignment{},
	)
	require.NoError(t, err)

	return repository.NewWithDB(db)
}

type testServices struct {
	ships       *service.ShipService
	ports       *service.PortService
	crew        *service.CrewMemberService
	cargoes     *service.CargoService
	visits      *service.ShipVisitService
	assignments *service.ShipCrewAssignmentService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()

	rep := newTestRepository(t)
	ships := service.NewShipService(rep)
	ports := service.NewPortService(rep)
	crew := service.NewCrewMemberService(rep)
	return testServices{
		ships:       ships,
		ports:       ports,
		crew:        crew,
		cargoes:     service.NewCargoService(rep, ships),
		visits:      service.NewShipVisitService(rep, ships, ports),
		assignments: service.NewShipCrewAssignmentService(rep, ships, crew),
	}
}

func mustCreateShip(t *testing.T, ships *service.ShipService, imo string) *ds.Ship {
	t.Helper()

	ship, err := ships.Create(&ds.Ship{
		Name:      "Test Ship " + imo,
		IMO:       imo,
		Type:      "Container",
		Flag:      "Panama",
		YearBuilt: 2010,
	})
	require.NoError(t, err)
	return ship
}

func mustCreatePort(t *testing.T, ports *service.PortService, name, country, city string) *ds.Port {
	t.Helper()

	port, err := ports.Create(&ds.Port{
		Name:    name,
		Country: country,
		City:    city,
	})
	require.NoError(t, err)
	return port
}

func mustCreateCrewMember(t *testing.T, crew *service.CrewMemberService, email string) *ds.CrewMember {
	t.Helper()

	crewMember, err := crew.Create(&ds.CrewMember{
		FirstName:   "Ivan",
		LastName:    "Petrov",
		Email:       email,
		PhoneNumber: "+70000000000",
		Role:        "captain",
	})
	require.NoError(t, err)
	return crewMember
}

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}
