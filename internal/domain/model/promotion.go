package model

type Promotion struct {
	ID            int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string   `gorm:"type:varchar(255);not null" json:"name"`
	DiscountType  string   `gorm:"type:varchar(32);not null" json:"discount_type"`
	DiscountValue float64  `gorm:"not null" json:"discount_value"`
	StartDate     string   `gorm:"type:varchar(32)" json:"start_date"`
	EndDate       string   `gorm:"type:varchar(32)" json:"end_date"`
	MinOrderValue *float64 `json:"min_order_value"`
	Priority      int      `gorm:"not null;default:1" json:"priority"`
}
