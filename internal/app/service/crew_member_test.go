package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/service"
)

func TestCrewMemberService_CreateRejectsDuplicateEmail(t *testing.T) {
	s := newTestServices(t)

	mustCreateCrewMember(t, s.crew, "ivan@example.com")

	_, err := s.crew.Create(&ds.CrewMember{
		FirstName:   "Petr",
		LastName:    "Ivanov",
		Email:       "ivan@example.com",
		PhoneNumber: "+70000000001",
		Role:        "engineer",
	})

	var violation *service.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, service.KindConflict, violation.Kind)
	assert.Equal(t, "Email address already exists", violation.Message)
}

func TestCrewMemberService_UpdateKeepsOwnEmail(t *testing.T) {
	s := newTestServices(t)

	crewMember := mustCreateCrewMember(t, s.crew, "ivan@example.com")

	updated, err := s.crew.Update(crewMember.CrewID, &ds.CrewMember{
		FirstName:   "Ivan",
		LastName:    "Petrov",
		Email:       "ivan@example.com",
		PhoneNumber: "+70000000002",
		Role:        "chief officer",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "chief officer", updated.Role)
}

func TestCrewMemberService_UpdateRejectsForeignEmail(t *testing.T) {
	s := newTestServices(t)

	mustCreateCrewMember(t, s.crew, "first@example.com")
	second := mustCreateCrewMember(t, s.crew, "second@example.com")

	_, err := s.crew.Update(second.CrewID, &ds.CrewMember{
		FirstName:   "Ivan",
		LastName:    "Petrov",
		Email:       "first@example.com",
		PhoneNumber: "+70000000003",
		Role:        "deckhand",
	})

	var violation *service.RuleViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, service.KindConflict, violation.Kind)
}

func TestCrewMemberService_UpdateMissingReturnsNil(t *testing.T) {
	s := newTestServices(t)

	updated, err := s.crew.Update(123, &ds.CrewMember{
		FirstName:   "Ghost",
		LastName:    "Ghost",
		Email:       "ghost@example.com",
		PhoneNumber: "+70000000004",
		Role:        "cook",
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestCrewMemberService_Exists(t *testing.T) {
	s := newTestServices(t)

	crewMember := mustCreateCrewMember(t, s.crew, "ivan@example.com")

	exists, err := s.crew.Exists(crewMember.CrewID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.crew.Exists(999)
	require.NoError(t, err)
	assert.False(t, exists)
}
