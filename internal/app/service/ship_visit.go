package service

import (
	"time"

	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
)

// ShipVisitService - составной сервис: помимо собственного CRUD проверяет
// ссылки на корабль и порт и непересечение интервалов стоянок. Проверка
// пересечения не подкреплена ограничением в базе и остаётся best-effort.
type ShipVisitService struct {
	repo  *repository.Repository
	ships *ShipService
	ports *PortService
}

func NewShipVisitService(repo *repository.Repository, ships *ShipService, ports *PortService) *ShipVisitService {
	return &ShipVisitService{
		repo:  repo,
		ships: ships,
		ports: ports,
	}
}

func (s *ShipVisitService) GetAll(filter repository.ShipVisitFilter, page repository.Page) ([]ds.ShipVisit, error) {
	return s.repo.GetShipVisits(filter, page)
}

func (s *ShipVisitService) GetByID(id int) (*ds.ShipVisit, error) {
	return s.repo.GetShipVisit(id)
}

func (s *ShipVisitService) Exists(id int) (bool, error) {
	visit, err := s.repo.GetShipVisit(id)
	if err != nil {
		return false, err
	}
	return visit != nil, nil
}

// IsShipAvailableForVisit - у корабля нет стоянки, пересекающейся с
// [arrival, departure). Интервалы полуоткрытые: стык "отошёл в 12:00,
// пришёл в 12:00" пересечением не считается.
func (s *ShipVisitService) IsShipAvailableForVisit(shipID int, arrival, departure time.Time, excludeVisitID *int) (bool, error) {
	visits, err := s.repo.GetVisitsByShip(shipID)
	if err != nil {
		return false, err
	}

	for _, visit := range visits {
		if excludeVisitID != nil && visit.VisitID == *excludeVisitID {
			continue
		}
		if arrival.Before(visit.DepartureDate) && departure.After(visit.ArrivalDate) {
			return false, nil
		}
	}
	return true, nil
}

func (s *ShipVisitService) validate(visit *ds.ShipVisit, excludeVisitID *int) error {
	shipExists, err := s.ships.Exists(visit.ShipID)
	if err != nil {
		return err
	}
	if !shipExists {
		return invalidReference("Ship does not exist")
	}

	portExists, err := s.ports.Exists(visit.PortID)
	if err != nil {
		return err
	}
	if !portExists {
		return invalidReference("Port does not exist")
	}

	if !visit.ArrivalDate.Before(visit.DepartureDate) {
		return invalidRange("Departure date must be after arrival date")
	}

	available, err := s.IsShipAvailableForVisit(visit.ShipID, visit.ArrivalDate, visit.DepartureDate, excludeVisitID)
	if err != nil {
		return err
	}
	if !available {
		return scheduleConflict("Ship is not available during the specified period")
	}
	return nil
}

func (s *ShipVisitService) Create(visit *ds.ShipVisit) (*ds.ShipVisit, error) {
	if err := s.validate(visit, nil); err != nil {
		return nil, err
	}
	if err := s.repo.CreateShipVisit(visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *ShipVisitService) Update(id int, visit *ds.ShipVisit) (*ds.ShipVisit, error) {
	existing, err := s.Exists(id)
	if err != nil {
		return nil, err
	}
	if !existing {
		return nil, nil
	}

	if err := s.validate(visit, &id); err != nil {
		return nil, err
	}
	return s.repo.UpdateShipVisit(id, visit)
}

func (s *ShipVisitService) Delete(id int) (bool, error) {
	return s.repo.DeleteShipVisit(id)
}

func (s *ShipVisitService) GetVisitsByShip(shipID int) ([]ds.ShipVisit, error) {
	return s.repo.GetVisitsByShip(shipID)
}

func (s *ShipVisitService) GetVisitsByPort(portID int) ([]ds.ShipVisit, error) {
	return s.repo.GetVisitsByPort(portID)
}

// GetActiveVisits - стоянки, идущие прямо сейчас: arrival <= now < departure
func (s *ShipVisitService) GetActiveVisits() ([]ds.ShipVisit, error) {
	visits, err := s.repo.GetShipVisits(repository.ShipVisitFilter{}, repository.Page{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	active := make([]ds.ShipVisit, 0)
	for _, visit := range visits {
		if !visit.ArrivalDate.After(now) && visit.DepartureDate.After(now) {
			active = append(active, visit)
		}
	}
	return active, nil
}

// GetUpcomingVisits - стоянки с прибытием в будущем
func (s *ShipVisitService) GetUpcomingVisits() ([]ds.ShipVisit, error) {
	visits, err := s.repo.GetShipVisits(repository.ShipVisitFilter{}, repository.Page{})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	upcoming := make([]ds.ShipVisit, 0)
	for _, visit := range visits {
		if visit.ArrivalDate.After(now) {
			upcoming = append(upcoming, visit)
		}
	}
	return upcoming, nil
}
