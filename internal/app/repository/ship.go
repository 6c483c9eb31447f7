package repository

import (
	"errors"

	"port_tracker/internal/app/ds"

	"gorm.io/gorm"
)

// ShipFilter - конъюнктивные фильтры списка кораблей
type ShipFilter struct {
	ShipID    *int
	Name      string
	IMO       string
	Type      string
	Flag      string
	YearBuilt *int
}

func (r *Repository) GetShips(filter ShipFilter, page Page) ([]ds.Ship, error) {
	query := r.db.Model(&ds.Ship{})

	if filter.ShipID != nil {
		query = query.Where("ship_id = ?", *filter.ShipID)
	}
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.IMO != "" {
		query = query.Where("imo LIKE ?", "%"+filter.IMO+"%")
	}
	if filter.Type != "" {
		query = query.Where("type LIKE ?", "%"+filter.Type+"%")
	}
	if filter.Flag != "" {
		query = query.Where("flag LIKE ?", "%"+filter.Flag+"%")
	}
	if filter.YearBuilt != nil {
		query = query.Where("year_built = ?", *filter.YearBuilt)
	}

	var ships []ds.Ship
	err := page.apply(query).Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *Repository) GetShip(id int) (*ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.Where("ship_id = ?", id).First(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ship, nil
}

// GetShipsByIMO - точное совпадение по бизнес-ключу, не подстрока
func (r *Repository) GetShipsByIMO(imo string) ([]ds.Ship, error) {
	var ships []ds.Ship
	err := r.db.Where("imo = ?", imo).Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *Repository) CreateShip(ship *ds.Ship) error {
	return r.db.Create(ship).Error
}

// UpdateShip - полная замена строки, nil если корабля нет
func (r *Repository) UpdateShip(id int, ship *ds.Ship) (*ds.Ship, error) {
	existing, err := r.GetShip(id)
	if err != nil || existing == nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"name":       ship.Name,
		"imo":        ship.IMO,
		"type":       ship.Type,
		"flag":       ship.Flag,
		"year_built": ship.YearBuilt,
	}
	if ship.PhotoURL != "" {
		updates["photo_url"] = ship.PhotoURL
	}
	err = r.db.Model(&ds.Ship{}).Where("ship_id = ?", id).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return r.GetShip(id)
}

func (r *Repository) DeleteShip(id int) (bool, error) {
	result := r.db.Where("ship_id = ?", id).Delete(&ds.Ship{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
