package service

import (
	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
)

type PortService struct {
	repo *repository.Repository
}

func NewPortService(repo *repository.Repository) *PortService {
	return &PortService{repo: repo}
}

func (s *PortService) GetAll(filter repository.PortFilter, page repository.Page) ([]ds.Port, error) {
	return s.repo.GetPorts(filter, page)
}

func (s *PortService) GetByID(id int) (*ds.Port, error) {
	return s.repo.GetPort(id)
}

func (s *PortService) Exists(id int) (bool, error) {
	port, err := s.repo.GetPort(id)
	if err != nil {
		return false, err
	}
	return port != nil, nil
}

// IsPortUnique - уникальность составного ключа (name, country, city).
// Бэкстоп-индекса в базе нет, проверка best-effort.
func (s *PortService) IsPortUnique(name, country, city string, excludeID *int) (bool, error) {
	ports, err := s.repo.GetPortsByIdentity(name, country, city)
	if err != nil {
		return false, err
	}
	return noOtherRows(ports, func(p ds.Port) int { return p.PortID }, excludeID), nil
}

func (s *PortService) Create(port *ds.Port) (*ds.Port, error) {
	unique, err := s.IsPortUnique(port.Name, port.Country, port.City, nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, conflict("Port with same name, country and city already exists")
	}

	if err := s.repo.CreatePort(port); err != nil {
		return nil, err
	}
	return port, nil
}

func (s *PortService) Update(id int, port *ds.Port) (*ds.Port, error) {
	unique, err := s.IsPortUnique(port.Name, port.Country, port.City, &id)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, conflict("Port with same name, country and city already exists")
	}

	return s.repo.UpdatePort(id, port)
}

func (s *PortService) Delete(id int) (bool, error) {
	return s.repo.DeletePort(id)
}
