package repository

import (
	"errors"
	"time"

	"port_tracker/internal/app/ds"

	"gorm.io/gorm"
)

type ShipCrewAssignmentFilter struct {
	AssignmentID   *int
	ShipID         *int
	CrewID         *int
	AssignmentDate *time.Time
}

func (r *Repository) GetShipCrewAssignments(filter ShipCrewAssignmentFilter, page Page) ([]ds.ShipCrewAssignment, error) {
	query := r.db.Model(&ds.ShipCrewAssignment{}).Preload("Ship").Preload("CrewMember")

	if filter.AssignmentID != nil {
		query = query.Where("assignment_id = ?", *filter.AssignmentID)
	}
	if filter.ShipID != nil {
		query = query.Where("ship_id = ?", *filter.ShipID)
	}
	if filter.CrewID != nil {
		query = query.Where("crew_id = ?", *filter.CrewID)
	}
	if filter.AssignmentDate != nil {
		start, end := dayWindow(*filter.AssignmentDate)
		query = query.Where("assignment_date >= ? AND assignment_date < ?", start, end)
	}

	var assignments []ds.ShipCrewAssignment
	err := page.apply(query).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *Repository) GetShipCrewAssignment(id int) (*ds.ShipCrewAssignment, error) {
	assignment := ds.ShipCrewAssignment{}
	err := r.db.Where("assignment_id = ?", id).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *Repository) GetAssignmentsByShip(shipID int) ([]ds.ShipCrewAssignment, error) {
	var assignments []ds.ShipCrewAssignment
	err := r.db.Where("ship_id = ?", shipID).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *Repository) GetAssignmentsByCrew(crewID int) ([]ds.ShipCrewAssignment, error) {
	var assignments []ds.ShipCrewAssignment
	err := r.db.Where("crew_id = ?", crewID).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetAssignmentsByCrewAndDate - точное совпадение дня назначения,
// используется проверкой доступности члена экипажа
func (r *Repository) GetAssignmentsByCrewAndDate(crewID int, date time.Time) ([]ds.ShipCrewAssignment, error) {
	start, end := dayWindow(date)
	var assignments []ds.ShipCrewAssignment
	err := r.db.
		Where("crew_id = ? AND assignment_date >= ? AND assignment_date < ?", crewID, start, end).
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *Repository) CreateShipCrewAssignment(assignment *ds.ShipCrewAssignment) error {
	return r.db.Create(assignment).Error
}

func (r *Repository) UpdateShipCrewAssignment(id int, assignment *ds.ShipCrewAssignment) (*ds.ShipCrewAssignment, error) {
	existing, err := r.GetShipCrewAssignment(id)
	if err != nil || existing == nil {
		return nil, err
	}
	err = r.db.Model(&ds.ShipCrewAssignment{}).Where("assignment_id = ?", id).Updates(map[string]interface{}{
		"ship_id":         assignment.ShipID,
		"crew_id":         assignment.CrewID,
		"assignment_date": assignment.AssignmentDate,
	}).Error
	if err != nil {
		return nil, err
	}
	return r.GetShipCrewAssignment(id)
}

func (r *Repository) DeleteShipCrewAssignment(id int) (bool, error) {
	result := r.db.Where("assignment_id = ?", id).Delete(&ds.ShipCrewAssignment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
