package service

import (
	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
)

type ShipService struct {
	repo *repository.Repository
}

func NewShipService(repo *repository.Repository) *ShipService {
	return &ShipService{repo: repo}
}

func (s *ShipService) GetAll(filter repository.ShipFilter, page repository.Page) ([]ds.Ship, error) {
	return s.repo.GetShips(filter, page)
}

func (s *ShipService) GetByID(id int) (*ds.Ship, error) {
	return s.repo.GetShip(id)
}

// Exists - примитив для проверок ссылок из составных сервисов
func (s *ShipService) Exists(id int) (bool, error) {
	ship, err := s.repo.GetShip(id)
	if err != nil {
		return false, err
	}
	return ship != nil, nil
}

// IsIMOUnique - true, если ни один другой корабль не носит этот IMO
func (s *ShipService) IsIMOUnique(imo string, excludeID *int) (bool, error) {
	ships, err := s.repo.GetShipsByIMO(imo)
	if err != nil {
		return false, err
	}
	return noOtherRows(ships, func(sh ds.Ship) int { return sh.ShipID }, excludeID), nil
}

func (s *ShipService) Create(ship *ds.Ship) (*ds.Ship, error) {
	unique, err := s.IsIMOUnique(ship.IMO, nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, conflict("IMO number already exists")
	}

	if err := s.repo.CreateShip(ship); err != nil {
		return nil, err
	}
	return ship, nil
}

// Update - полная замена; nil без ошибки, если корабля с таким id нет
func (s *ShipService) Update(id int, ship *ds.Ship) (*ds.Ship, error) {
	unique, err := s.IsIMOUnique(ship.IMO, &id)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, conflict("IMO number already exists")
	}

	return s.repo.UpdateShip(id, ship)
}

func (s *ShipService) Delete(id int) (bool, error) {
	return s.repo.DeleteShip(id)
}
