package ds

import "time"

// @Schema(description="Crew assignment to a ship for a single date")
type ShipCrewAssignment struct {
	AssignmentID   int         `gorm:"primaryKey;column:assignment_id" json:"assignment_id"`
	ShipID         int         `gorm:"column:ship_id;uniqueIndex:idx_ship_crew_date" json:"ship_id"`
	Ship           *Ship       `gorm:"foreignKey:ShipID" json:"ship,omitempty"`
	CrewID         int         `gorm:"column:crew_id;uniqueIndex:idx_ship_crew_date" json:"crew_id"`
	CrewMember     *CrewMember `gorm:"foreignKey:CrewID" json:"crew_member,omitempty"`
	AssignmentDate time.Time   `gorm:"column:assignment_date;uniqueIndex:idx_ship_crew_date" json:"assignment_date"`
}

func (ShipCrewAssignment) TableName() string {
	return "ship_crew_assignments"
}
