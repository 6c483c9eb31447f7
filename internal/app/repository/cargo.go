package repository

import (
	"errors"

	"port_tracker/internal/app/ds"

	"gorm.io/gorm"
)

type CargoFilter struct {
	CargoID     *int
	ShipID      *int
	Description string
	CargoType   string
	MinWeight   *float64
	MaxWeight   *float64
}

func (r *Repository) GetCargoes(filter CargoFilter, page Page) ([]ds.Cargo, error) {
	query := r.db.Model(&ds.Cargo{}).Preload("Ship")

	if filter.CargoID != nil {
		query = query.Where("cargo_id = ?", *filter.CargoID)
	}
	if filter.ShipID != nil {
		query = query.Where("ship_id = ?", *filter.ShipID)
	}
	if filter.Description != "" {
		query = query.Where("description LIKE ?", "%"+filter.Description+"%")
	}
	if filter.CargoType != "" {
		query = query.Where("cargo_type LIKE ?", "%"+filter.CargoType+"%")
	}
	if filter.MinWeight != nil {
		query = query.Where("weight >= ?", *filter.MinWeight)
	}
	if filter.MaxWeight != nil {
		query = query.Where("weight <= ?", *filter.MaxWeight)
	}

	var cargoes []ds.Cargo
	err := page.apply(query).Find(&cargoes).Error
	if err != nil {
		return nil, err
	}
	return cargoes, nil
}

func (r *Repository) GetCargo(id int) (*ds.Cargo, error) {
	cargo := ds.Cargo{}
	err := r.db.Where("cargo_id = ?", id).First(&cargo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cargo, nil
}

func (r *Repository) CreateCargo(cargo *ds.Cargo) error {
	return r.db.Create(cargo).Error
}

func (r *Repository) UpdateCargo(id int, cargo *ds.Cargo) (*ds.Cargo, error) {
	existing, err := r.GetCargo(id)
	if err != nil || existing == nil {
		return nil, err
	}
	err = r.db.Model(&ds.Cargo{}).Where("cargo_id = ?", id).Updates(map[string]interface{}{
		"ship_id":     cargo.ShipID,
		"description": cargo.Description,
		"weight":      cargo.Weight,
		"cargo_type":  cargo.CargoType,
	}).Error
	if err != nil {
		return nil, err
	}
	return r.GetCargo(id)
}

func (r *Repository) DeleteCargo(id int) (bool, error) {
	result := r.db.Where("cargo_id = ?", id).Delete(&ds.Cargo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
