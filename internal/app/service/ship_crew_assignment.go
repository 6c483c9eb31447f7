package service

import (
	"time"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
)

// ShipCrewAssignmentService - составной сервис: проверяет ссылки на корабль
// и члена экипажа и отсутствие второго назначения на ту же дату. Тройку
// (ship, crew, date) дополнительно держит уникальный индекс в базе.
type ShipCrewAssignmentService struct {
	repo  *repository.Repository
	ships *ShipService
	crew  *CrewMemberService
}

func NewShipCrewAssignmentService(repo *repository.Repository, ships *ShipService, crew *CrewMemberService) *ShipCrewAssignmentService {
	return &ShipCrewAssignmentService{repo: repo, ships: ships, crew: crew}
}

func (s *ShipCrewAssignmentService) GetAll(filter repository.ShipCrewAssignmentFilter, page repository.Page) ([]ds.ShipCrewAssignment, error) {
	return s.repo.GetShipCrewAssignments(filter, page)
}

func (s *ShipCrewAssignmentService) GetByID(id int) (*ds.ShipCrewAssignment, error) {
	return s.repo.GetShipCrewAssignment(id)
}

func (s *ShipCrewAssignmentService) Exists(id int) (bool, error) {
	assignment, err := s.repo.GetShipCrewAssignment(id)
	if err != nil {
		return false, err
	}
	return assignment != nil, nil
}

// IsCrewMemberAvailable - член экипажа свободен в эту дату. Конфликтом
// считается только точное совпадение дня, не диапазон.
func (s *ShipCrewAssignmentService) IsCrewMemberAvailable(crewID int, date time.Time, excludeAssignmentID *int) (bool, error) {
	assignments, err := s.repo.GetAssignmentsByCrewAndDate(crewID, date)
	if err != nil {
		return false, err
	}
	return noOtherRows(assignments, func(a ds.ShipCrewAssignment) int { return a.AssignmentID }, excludeAssignmentID), nil
}

func (s *ShipCrewAssignmentService) validate(assignment *ds.ShipCrewAssignment, excludeAssignmentID *int) error {
	shipExists, err := s.ships.Exists(assignment.ShipID)
	if err != nil {
		return err
	}
	if !shipExists {
		return invalidReference("Ship does not exist")
	}

	crewExists, err := s.crew.Exists(assignment.CrewID)
	if err != nil {
		return err
	}
	if !crewExists {
		return invalidReference("Crew member does not exist")
	}

	available, err := s.IsCrewMemberAvailable(assignment.CrewID, assignment.AssignmentDate, excludeAssignmentID)
	if err != nil {
		return err
	}
	if !available {
		return scheduleConflict("Crew member is already assigned to another ship on this date")
	}
	return nil
}

func (s *ShipCrewAssignmentService) Create(assignment *ds.ShipCrewAssignment) (*ds.ShipCrewAssignment, error) {
	if err := s.validate(assignment, nil); err != nil {
		return nil, err
	}
	if err := s.repo.CreateShipCrewAssignment(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *ShipCrewAssignmentService) Update(id int, assignment *ds.ShipCrewAssignment) (*ds.ShipCrewAssignment, error) {
	existing, err := s.Exists(id)
	if err != nil {
		return nil, err
	}
	if !existing {
		return nil, nil
	}

	if err := s.validate(assignment, &id); err != nil {
		return nil, err
	}
	return s.repo.UpdateShipCrewAssignment(id, assignment)
}

func (s *ShipCrewAssignmentService) Delete(id int) (bool, error) {
	return s.repo.DeleteShipCrewAssignment(id)
}

func (s *ShipCrewAssignmentService) GetAssignmentsByShip(shipID int) ([]ds.ShipCrewAssignment, error) {
	return s.repo.GetAssignmentsByShip(shipID)
}

func (s *ShipCrewAssignmentService) GetAssignmentsByCrew(crewID int) ([]ds.ShipCrewAssignment, error) {
	return s.repo.GetAssignmentsByCrew(crewID)
}
