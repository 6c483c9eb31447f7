package repository

import (
	"errors"

	"port_tracker/internal/app/ds"

	"gorm.io/gorm"
)

type CrewMemberFilter struct {
	CrewID      *int
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Role        string
}

func (r *Repository) GetCrewMembers(filter CrewMemberFilter, page Page) ([]ds.CrewMember, error) {
	query := r.db.Model(&ds.CrewMember{})

	if filter.CrewID != nil {
		query = query.Where("crew_id = ?", *filter.CrewID)
	}
	if filter.FirstName != "" {
		query = query.Where("first_name LIKE ?", "%"+filter.FirstName+"%")
	}
	if filter.LastName != "" {
		query = query.Where("last_name LIKE ?", "%"+filter.LastName+"%")
	}
	if filter.Email != "" {
		query = query.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.PhoneNumber != "" {
		query = query.Where("phone_number LIKE ?", "%"+filter.PhoneNumber+"%")
	}
	if filter.Role != "" {
		query = query.Where("role LIKE ?", "%"+filter.Role+"%")
	}

	var crewMembers []ds.CrewMember
	err := page.apply(query).Find(&crewMembers).Error
	if err != nil {
		return nil, err
	}
	return crewMembers, nil
}

func (r *Repository) GetCrewMember(id int) (*ds.CrewMember, error) {
	crewMember := ds.CrewMember{}
	err := r.db.Where("crew_id = ?", id).First(&crewMember).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &crewMember, nil
}

// GetCrewMembersByEmail - точное совпадение по бизнес-ключу
func (r *Repository) GetCrewMembersByEmail(email string) ([]ds.CrewMember, error) {
	var crewMembers []ds.CrewMember
	err := r.db.Where("email = ?", email).Find(&crewMembers).Error
	if err != nil {
		return nil, err
	}
	return crewMembers, nil
}

func (r *Repository) CreateCrewMember(crewMember *ds.CrewMember) error {
	return r.db.Create(crewMember).Error
}

func (r *Repository) UpdateCrewMember(id int, crewMember *ds.CrewMember) (*ds.CrewMember, error) {
	existing, err := r.GetCrewMember(id)
	if err != nil || existing == nil {
		return nil, err
	}
	err = r.db.Model(&ds.CrewMember{}).Where("crew_id = ?", id).Updates(map[string]interface{}{
		"first_name":   crewMember.FirstName,
		"last_name":    crewMember.LastName,
		"email":        crewMember.Email,
		"phone_number": crewMember.PhoneNumber,
		"role":         crewMember.Role,
	}).Error
	if err != nil {
		return nil, err
	}
	return r.GetCrewMember(id)
}

func (r *Repository) DeleteCrewMember(id int) (bool, error) {
	result := r.db.Where("crew_id = ?", id).Delete(&ds.CrewMember{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
