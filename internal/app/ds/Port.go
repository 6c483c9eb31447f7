package ds

// @Schema(description="Port model, unique by (name, country, city)")
type Port struct {
	PortID  int    `gorm:"primaryKey;column:port_id" json:"port_id"`
	Name    string `gorm:"column:name" json:"name"`
	Country string `gorm:"column:country" json:"country"`
	City    string `gorm:"column:city" json:"city"`
}

func (Port) TableName() string {
	return "ports"
}
