package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/service"
)

func TestPortService_CreateRejectsDuplicateIdentity(t *testing.T) {
	s := newTestServices(t)

	mustCreatePort(t, s.ports, "Port of Hamburg", "Germany", "Hamburg")

	_, err := s.ports.Create(&ds.Port{
		Name:    "Port of Hamburg",
		Country: "Germany",
		City:    "Hamburg",
	})

	var violation *service.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, service.KindConflict, violation.Kind)
	assert.Equal(t, "Port with same name, country and city already exists", violation.Message)
}

func TestPortService_SameNameDifferentCityAllowed(t *testing.T) {
	s := newTestServices(t)

	mustCreatePort(t, s.ports, "Freeport", "USA", "Freeport TX")

	// Совпадает только часть составного ключа - конфликта нет
	port, err := s.ports.Create(&ds.Port{
		Name:    "Freeport",
		Country: "Bahamas",
		City:    "Freeport",
	})
	require.NoError(t, err)
	assert.NotZero(t, port.PortID)
}

func TestPortService_UpdateKeepsOwnIdentity(t *testing.T) {
	s := newTestServices(t)

	port := mustCreatePort(t, s.ports, "Port of Rotterdam", "Netherlands", "Rotterdam")

	updated, err := s.ports.Update(port.PortID, &ds.Port{
		Name:    "Port of Rotterdam",
		Country: "Netherlands",
		City:    "Rotterdam",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
}

func TestPortService_UpdateRejectsForeignIdentity(t *testing.T) {
	s := newTestServices(t)

	mustCreatePort(t, s.ports, "Port A", "Spain", "Valencia")
	second := mustCreatePort(t, s.ports, "Port B", "Spain", "Barcelona")

	_, err := s.ports.Update(second.PortID, &ds.Port{
		Name:    "Port A",
		Country: "Spain",
		City:    "Valencia",
	})

	var violation *service.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, service.KindConflict, violation.Kind)
}

func TestPortService_UpdateMissingPortReturnsNil(t *testing.T) {
	s := newTestServices(t)

	updated, err := s.ports.Update(77, &ds.Port{
		Name:    "Nowhere",
		Country: "Nowhere",
		City:    "Nowhere",
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}
