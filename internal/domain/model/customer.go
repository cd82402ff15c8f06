package model

type Customer struct {
	ID            int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerCode  string  `gorm:"type:varchar(64);index" json:"customer_id"`
	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	Gender        string  `gorm:"type:varchar(16)" json:"gender"`
	Age           int     `json:"age"`
	LoyaltyStatus string  `gorm:"type:varchar(32)" json:"loyalty_status"`
	TotalSpent    float64 `gorm:"not null;default:0" json:"total_spent"`
	ChurnStatus   string  `gorm:"type:varchar(32)" json:"churn_status"`
}
