package ds

import "time"

// @Schema(description="Ship visit to a port, half-open interval [arrival, departure)")
type ShipVisit struct {
	VisitID       int       `gorm:"primaryKey;column:visit_id" json:"visit_id"`
	ShipID        int       `gorm:"column:ship_id" json:"ship_id"`
	Ship          *Ship     `gorm:"foreignKey:ShipID" json:"ship,omitempty"`
	PortID        int       `gorm:"column:port_id" json:"port_id"`
	Port          *Port     `gorm:"foreignKey:PortID" json:"port,omitempty"`
	ArrivalDate   time.Time `gorm:"column:arrival_date" json:"arrival_date"`
	DepartureDate time.Time `gorm:"column:departure_date" json:"departure_date"`
	Purpose       string    `gorm:"column:purpose" json:"purpose"`
}

func (ShipVisit) TableName() string {
	return "ship_visits"
}
