package service

import (
	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
)

type CargoService struct {
	repo  *repository.Repository
	ships *ShipService
}

func NewCargoService(repo *repository.Repository, ships *ShipService) *CargoService {
	return &CargoService{repo: repo, ships: ships}
}

func (s *CargoService) GetAll(filter repository.CargoFilter, page repository.Page) ([]ds.Cargo, error) {
	return s.repo.GetCargoes(filter, page)
}

func (s *CargoService) GetByID(id int) (*ds.Cargo, error) {
	return s.repo.GetCargo(id)
}

func (s *CargoService) Exists(id int) (bool, error) {
	cargo, err := s.repo.GetCargo(id)
	if err != nil {
		return false, err
	}
	return cargo != nil, nil
}

func (s *CargoService) Create(cargo *ds.Cargo) (*ds.Cargo, error) {
	shipExists, err := s.ships.Exists(cargo.ShipID)
	if err != nil {
		return nil, err
	}
	if !shipExists {
		return nil, invalidReference("Ship does not exist")
	}

	if err := s.repo.CreateCargo(cargo); err != nil {
		return nil, err
	}
	return cargo, nil
}

func (s *CargoService) Update(id int, cargo *ds.Cargo) (*ds.Cargo, error) {
	existing, err := s.Exists(id)
	if err != nil {
		return nil, err
	}
	if !existing {
		return nil, nil
	}

	shipExists, err := s.ships.Exists(cargo.ShipID)
	if err != nil {
		return nil, err
	}
	if !shipExists {
		return nil, invalidReference("Ship does not exist")
	}

	return s.repo.UpdateCargo(id, cargo)
}

func (s *CargoService) Delete(id int) (bool, error) {
	return s.repo.DeleteCargo(id)
}
