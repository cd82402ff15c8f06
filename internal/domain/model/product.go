package model

type Product struct {
	ID             int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductCode    string  `gorm:"type:varchar(64);index" json:"product_id"`
	Name           string  `gorm:"type:varchar(100);not null" json:"name"`
	Category       string  `gorm:"type:varchar(100);not null" json:"category"`
	Description    string  `gorm:"type:text" json:"description"`
	Price          float64 `gorm:"not null" json:"price"`
	Cost           float64 `gorm:"not null" json:"cost"`
	Seasonal       bool    `gorm:"not null;default:false" json:"seasonal"`
	Active         bool    `gorm:"not null;default:true" json:"active"`
	IntroducedDate string  `gorm:"type:varchar(32)" json:"introduced_date"`
	Stock          int64   `gorm:"not null;default:50" json:"stock"`
}
