package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"
)

func TestShipCrewAssignmentService_CreateRejectsMissingShip(t *testing.T) {
	s := newTestServices(t)

	crewMember := mustCreateCrewMember(t, s.crew, "ivan@example.com")

	_, err := s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         999,
		CrewID:         crewMember.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})

	var violation *service.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, service.KindInvalidReference, violation.Kind)
	assert.Equal(t, "Ship does not exist", violation.Message)
}

func TestShipCrewAssignmentService_CreateRejectsMissingCrewMember(t *testing.T) {
	s := newTestServices(t)

	ship := mustCreateShip(t, s.ships, "IMO1234567")

	_, err := s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         ship.ShipID,
		CrewID:         999,
		AssignmentDate: day(2024, time.May, 1),
	})

	var violation *service.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, service.KindInvalidReference, violation.Kind)
	assert.Equal(t, "Crew member does not exist", violation.Message)

	// Ничего не записано
	assignments, err := s.assignments.GetAll(repository.ShipCrewAssignmentFilter{}, repository.Page{})
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestShipCrewAssignmentService_DoubleBookingRejected(t *testing.T) {
	s := newTestServices(t)

	shipA := mustCreateShip(t, s.ships, "IMO1111111")
	shipB := mustCreateShip(t, s.ships, "IMO2222222")
	crewMember := mustCreateCrewMember(t, s.crew, "ivan@example.com")

	_, err := s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         shipA.ShipID,
		CrewID:         crewMember.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})
	require.NoError(t, err)

	// Тот же день, другой корабль - конфликт
	_, err = s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         shipB.ShipID,
		CrewID:         crewMember.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})
	var violation *service.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, service.KindScheduleConflict, violation.Kind)
	assert.Equal(t, "Crew member is already assigned to another ship on this date", violation.Message)

	// Следующий день проходит
	next, err := s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         shipB.ShipID,
		CrewID:         crewMember.CrewID,
		AssignmentDate: day(2024, time.May, 2),
	})
	require.NoError(t, err)
	assert.NotZero(t, next.AssignmentID)
}

func TestShipCrewAssignmentService_OtherCrewSameDateAllowed(t *testing.T) {
	s := newTestServices(t)

	ship := mustCreateShip(t, s.ships, "IMO1234567")
	first := mustCreateCrewMember(t, s.crew, "first@example.com")
	second := mustCreateCrewMember(t, s.crew, "second@example.com")

	_, err := s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         ship.ShipID,
		CrewID:         first.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})
	require.NoError(t, err)

	_, err = s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         ship.ShipID,
		CrewID:         second.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})
	require.NoError(t, err)
}

func TestShipCrewAssignmentService_UpdateExcludesOwnDate(t *testing.T) {
	s := newTestServices(t)

	shipA := mustCreateShip(t, s.ships, "IMO1111111")
	shipB := mustCreateShip(t, s.ships, "IMO2222222")
	crewMember := mustCreateCrewMember(t, s.crew, "ivan@example.com")

	assignment, err := s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         shipA.ShipID,
		CrewID:         crewMember.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})
	require.NoError(t, err)

	// Перенос на другой корабль той же датой не конфликтует сам с собой
	updated, err := s.assignments.Update(assignment.AssignmentID, &ds.ShipCrewAssignment{
		ShipID:         shipB.ShipID,
		CrewID:         crewMember.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, shipB.ShipID, updated.ShipID)
}

func TestShipCrewAssignmentService_UpdateMissingReturnsNil(t *testing.T) {
	s := newTestServices(t)

	ship := mustCreateShip(t, s.ships, "IMO1234567")
	crewMember := mustCreateCrewMember(t, s.crew, "ivan@example.com")

	updated, err := s.assignments.Update(404, &ds.ShipCrewAssignment{
		ShipID:         ship.ShipID,
		CrewID:         crewMember.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)

	// И никакой записи не появилось
	assignments, err := s.assignments.GetAll(repository.ShipCrewAssignmentFilter{}, repository.Page{})
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestShipCrewAssignmentService_GetByShipAndCrew(t *testing.T) {
	s := newTestServices(t)

	ship := mustCreateShip(t, s.ships, "IMO1234567")
	first := mustCreateCrewMember(t, s.crew, "first@example.com")
	second := mustCreateCrewMember(t, s.crew, "second@example.com")

	_, err := s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         ship.ShipID,
		CrewID:         first.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})
	require.NoError(t, err)

	_, err = s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         ship.ShipID,
		CrewID:         second.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})
	require.NoError(t, err)

	byShip, err := s.assignments.GetAssignmentsByShip(ship.ShipID)
	require.NoError(t, err)
	assert.Len(t, byShip, 2)

	byCrew, err := s.assignments.GetAssignmentsByCrew(first.CrewID)
	require.NoError(t, err)
	require.Len(t, byCrew, 1)
	assert.Equal(t, first.CrewID, byCrew[0].CrewID)
}

func TestShipCrewAssignmentService_IsCrewMemberAvailable(t *testing.T) {
	s := newTestServices(t)

	ship := mustCreateShip(t, s.ships, "IMO1234567")
	crewMember := mustCreateCrewMember(t, s.crew, "ivan@example.com")

	assignment, err := s.assignments.Create(&ds.ShipCrewAssignment{
		ShipID:         ship.ShipID,
		CrewID:         crewMember.CrewID,
		AssignmentDate: day(2024, time.May, 1),
	})
	require.NoError(t, err)

	available, err := s.assignments.IsCrewMemberAvailable(crewMember.CrewID, day(2024, time.May, 1), nil)
	require.NoError(t, err)
	assert.False(t, available)

	available, err = s.assignments.IsCrewMemberAvailable(crewMember.CrewID, day(2024, time.May, 1), &assignment.AssignmentID)
	require.NoError(t, err)
	assert.True(t, available)

	available, err = s.assignments.IsCrewMemberAvailable(crewMember.CrewID, day(2024, time.May, 2), nil)
	require.NoError(t, err)
	assert.True(t, available)
}
