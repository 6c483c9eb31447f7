package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"
)

func TestShipService_CreateRejectsDuplicateIMO(t *testing.T) {
	s := newTestServices(t)

	mustCreateShip(t, s.ships, "IMO1234567")

	_, err := s.ships.Create(&ds.Ship{
		Name:      "Second Ship",
		IMO:       "IMO1234567",
		Type:      "Tanker",
		Flag:      "Liberia",
		YearBuilt: 2015,
	})

	var violation *service.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, service.KindConflict, violation.Kind)
	assert.Equal(t, "IMO number already exists", violation.Message)

	// Первый корабль остаётся единственным с этим IMO
	ships, err := s.ships.GetAll(repository.ShipFilter{IMO: "IMO1234567"}, repository.Page{})
	require.NoError(t, err)
	assert.Len(t, ships, 1)
}

func TestShipService_UpdateKeepsOwnIMO(t *testing.T) {
	s := newTestServices(t)

	ship := mustCreateShip(t, s.ships, "IMO1234567")

	// Пересохранение с тем же IMO не конфликтует само с собой
	updated, err := s.ships.Update(ship.ShipID, &ds.Ship{
		Name:      "Renamed",
		IMO:       "IMO1234567",
		Type:      "Container",
		Flag:      "Panama",
		YearBuilt: 2010,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "IMO1234567", updated.IMO)
}

func TestShipService_UpdateRejectsForeignIMO(t *testing.T) {
	s := newTestServices(t)

	mustCreateShip(t, s.ships, "IMO1111111")
	second := mustCreateShip(t, s.ships, "IMO2222222")

	_, err := s.ships.Update(second.ShipID, &ds.Ship{
		Name:      "Clash",
		IMO:       "IMO1111111",
		Type:      "Container",
		Flag:      "Panama",
		YearBuilt: 2012,
	})

	var violation *service.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, service.KindConflict, violation.Kind)
}

func TestShipService_UpdateMissingShipReturnsNil(t *testing.T) {
	s := newTestServices(t)

	updated, err := s.ships.Update(999, &ds.Ship{
		Name:      "Ghost",
		IMO:       "IMO9999999",
		Type:      "Container",
		Flag:      "Panama",
		YearBuilt: 2000,
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestShipService_ExistsAndDelete(t *testing.T) {
	s := newTestServices(t)

	ship := mustCreateShip(t, s.ships, "IMO1234567")

	exists, err := s.ships.Exists(ship.ShipID)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := s.ships.Delete(ship.ShipID)
	require.NoError(t, err)
	assert.True(t, deleted)

	exists, err = s.ships.Exists(ship.ShipID)
	require.NoError(t, err)
	assert.False(t, exists)

	deleted, err = s.ships.Delete(ship.ShipID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestShipService_GetByIDMissingReturnsNil(t *testing.T) {
	s := newTestServices(t)

	ship, err := s.ships.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, ship)
}

func TestShipService_IsIMOUnique(t *testing.T) {
	s := newTestServices(t)

	ship := mustCreateShip(t, s.ships, "IMO1234567")

	unique, err := s.ships.IsIMOUnique("IMO1234567", nil)
	require.NoError(t, err)
	assert.False(t, unique)

	unique, err = s.ships.IsIMOUnique("IMO1234567", &ship.ShipID)
	require.NoError(t, err)
	assert.True(t, unique)

	unique, err = s.ships.IsIMOUnique("IMO7654321", nil)
	require.NoError(t, err)
	assert.True(t, unique)
}
