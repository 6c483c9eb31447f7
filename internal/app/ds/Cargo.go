package ds

// @Schema(description="Cargo model, belongs to a ship")
type Cargo struct {
	CargoID     int     `gorm:"primaryKey;column:cargo_id" json:"cargo_id"`
	ShipID      int     `gorm:"column:ship_id" json:"ship_id"`
	Ship        *Ship   `gorm:"foreignKey:ShipID" json:"ship,omitempty"`
	Description string  `gorm:"column:description" json:"description"`
	Weight      float64 `gorm:"column:weight;type:decimal(10,2)" json:"weight"`
	CargoType   string  `gorm:"column:cargo_type" json:"cargo_type"`
}

func (Cargo) TableName() string {
	return "cargoes"
}
