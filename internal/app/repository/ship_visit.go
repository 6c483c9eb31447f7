package repository

import (
	"errors"
	"time"

	"port_tracker/internal/app/ds"

	"gorm.io/gorm"
)

type ShipVisitFilter struct {
	VisitID       *int
	ShipID        *int
	PortID        *int
	ArrivalDate   *time.Time
	DepartureDate *time.Time
	Purpose       string
}

func (r *Repository) GetShipVisits(filter ShipVisitFilter, page Page) ([]ds.ShipVisit, error) {
	query := r.db.Model(&ds.ShipVisit{}).Preload("Ship").Preload("Port")

	if filter.VisitID != nil {
		query = query.Where("visit_id = ?", *filter.VisitID)
	}
	if filter.ShipID != nil {
		query = query.Where("ship_id = ?", *filter.ShipID)
	}
	if filter.PortID != nil {
		query = query.Where("port_id = ?", *filter.PortID)
	}
	if filter.Purpose != "" {
		query = query.Where("purpose LIKE ?", "%"+filter.Purpose+"%")
	}
	// Фильтры по датам сравнивают календарный день, не момент
	if filter.ArrivalDate != nil {
		start, end := dayWindow(*filter.ArrivalDate)
		query = query.Where("arrival_date >= ? AND arrival_date < ?", start, end)
	}
	if filter.DepartureDate != nil {
		start, end := dayWindow(*filter.DepartureDate)
		query = query.Where("departure_date >= ? AND departure_date < ?", start, end)
	}

	var visits []ds.ShipVisit
	err := page.apply(query).Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *Repository) GetShipVisit(id int) (*ds.ShipVisit, error) {
	visit := ds.ShipVisit{}
	err := r.db.Where("visit_id = ?", id).First(&visit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

func (r *Repository) GetVisitsByShip(shipID int) ([]ds.ShipVisit, error) {
	var visits []ds.ShipVisit
	err := r.db.Where("ship_id = ?", shipID).Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *Repository) GetVisitsByPort(portID int) ([]ds.ShipVisit, error) {
	var visits []ds.ShipVisit
	err := r.db.Where("port_id = ?", portID).Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *Repository) CreateShipVisit(visit *ds.ShipVisit) error {
	return r.db.Create(visit).Error
}

func (r *Repository) UpdateShipVisit(id int, visit *ds.ShipVisit) (*ds.ShipVisit, error) {
	existing, err := r.GetShipVisit(id)
	if err != nil || existing == nil {
		return nil, err
	}
	err = r.db.Model(&ds.ShipVisit{}).Where("visit_id = ?", id).Updates(map[string]interface{}{
		"ship_id":        visit.ShipID,
		"port_id":        visit.PortID,
		"arrival_date":   visit.ArrivalDate,
		"departure_date": visit.DepartureDate,
		"purpose":        visit.Purpose,
	}).Error
	if err != nil {
		return nil, err
	}
	return r.GetShipVisit(id)
}

func (r *Repository) DeleteShipVisit(id int) (bool, error) {
	result := r.db.Where("visit_id = ?", id).Delete(&ds.ShipVisit{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// dayWindow - границы календарного дня [00:00, 24:00) в UTC
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
