package ds

// @Schema(description="Ship model with IMO business key")
type Ship struct {
	ShipID    int    `gorm:"primaryKey;column:ship_id" json:"ship_id"`
	Name      string `gorm:"column:name" json:"name"`
	IMO       string `gorm:"column:imo;uniqueIndex" json:"imo"`
	Type      string `gorm:"column:type" json:"type"`
	Flag      string `gorm:"column:flag" json:"flag"`
	YearBuilt int    `gorm:"column:year_built" json:"year_built"`
	PhotoURL  string `gorm:"column:photo_url" json:"photo_url"`
}

func (Ship) TableName() string {
	return "ships"
}
