package service

import (
	"port_tracker/internal/app/ds"
	"port_tracker/internal/app/repository"
)

type CrewMemberService struct {
	repo *repository.Repository
}

func NewCrewMemberService(repo *repository.Repository) *CrewMemberService {
	return &CrewMemberService{repo: repo}
}

func (s *CrewMemberService) GetAll(filter repository.CrewMemberFilter, page repository.Page) ([]ds.CrewMember, error) {
	return s.repo.GetCrewMembers(filter, page)
}

func (s *CrewMemberService) GetByID(id int) (*ds.CrewMember, error) {
	return s.repo.GetCrewMember(id)
}

func (s *CrewMemberService) Exists(id int) (bool, error) {
	crewMember, err := s.repo.GetCrewMember(id)
	if err != nil {
		return false, err
	}
	return crewMember != nil, nil
}

func (s *CrewMemberService) IsEmailUnique(email string, excludeID *int) (bool, error) {
	crewMembers, err := s.repo.GetCrewMembersByEmail(email)
	if err != nil {
		return false, err
	}
	return noOtherRows(crewMembers, func(cm ds.CrewMember) int { return cm.CrewID }, excludeID), nil
}

func (s *CrewMemberService) Create(crewMember *ds.CrewMember) (*ds.CrewMember, error) {
	unique, err := s.IsEmailUnique(crewMember.Email, nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, conflict("Email address already exists")
	}

	if err := s.repo.CreateCrewMember(crewMember); err != nil {
		return nil, err
	}
	return crewMember, nil
}

func (s *CrewMemberService) Update(id int, crewMember *ds.CrewMember) (*ds.CrewMember, error) {
	unique, err := s.IsEmailUnique(crewMember.Email, &id)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, conflict("Email address already exists")
	}

	return s.repo.UpdateCrewMember(id, crewMember)
}

func (s *CrewMemberService) Delete(id int) (bool, error) {
	return s.repo.DeleteCrewMember(id)
}
