package repository

import (
	"errors"

	"port_tracker/internal/app/ds"

	"gorm.io/gorm"
)

type PortFilter struct {
	PortID  *int
	Name    string
	Country string
	City    string
}

func (r *Repository) GetPorts(filter PortFilter, page Page) ([]ds.Port, error) {
	query := r.db.Model(&ds.Port{})

	if filter.PortID != nil {
		query = query.Where("port_id = ?", *filter.PortID)
	}
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Country != "" {
		query = query.Where("country LIKE ?", "%"+filter.Country+"%")
	}
	if filter.City != "" {
		query = query.Where("city LIKE ?", "%"+filter.City+"%")
	}

	var ports []ds.Port
	err := page.apply(query).Find(&ports).Error
	if err != nil {
		return nil, err
	}
	return ports, nil
}

func (r *Repository) GetPort(id int) (*ds.Port, error) {
	port := ds.Port{}
	err := r.db.Where("port_id = ?", id).First(&port).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &port, nil
}

// GetPortsByIdentity - точное совпадение составного ключа (name, country, city)
func (r *Repository) GetPortsByIdentity(name, country, city string) ([]ds.Port, error) {
	var ports []ds.Port
	err := r.db.
		Where("name = ? AND country = ? AND city = ?", name, country, city).
		Find(&ports).Error
	if err != nil {
		return nil, err
	}
	return ports, nil
}

func (r *Repository) CreatePort(port *ds.Port) error {
	return r.db.Create(port).Error
}

func (r *Repository) UpdatePort(id int, port *ds.Port) (*ds.Port, error) {
	existing, err := r.GetPort(id)
	if err != nil || existing == nil {
		return nil, err
	}
	err = r.db.Model(&ds.Port{}).Where("port_id = ?", id).Updates(map[string]interface{}{
		"name":    port.Name,
		"country": port.Country,
		"city":    port.City,
	}).Error
	if err != nil {
		return nil, err
	}
	return r.GetPort(id)
}

func (r *Repository) DeletePort(id int) (bool, error) {
	result := r.db.Where("port_id = ?", id).Delete(&ds.Port{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
