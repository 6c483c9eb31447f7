package ds

// @Schema(description="Crew member model, unique by email")
type CrewMember struct {
	CrewID      int    `gorm:"primaryKey;column:crew_id" json:"crew_id"`
	FirstName   string `gorm:"column:first_name" json:"first_name"`
	LastName    string `gorm:"column:last_name" json:"last_name"`
	Email       string `gorm:"column:email" json:"email"`
	PhoneNumber string `gorm:"column:phone_number" json:"phone_number"`
	Role        string `gorm:"column:role" json:"role"` // "captain" | "engineer" | "deckhand" | ...
}

func (CrewMember) TableName() string {
	return "crew_members"
}
