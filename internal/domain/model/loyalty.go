package model

// 顧客ごとに1行（customer_id unique）。upsertで置き換える。
type Loyalty struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64 `gorm:"not null;uniqueIndex" json:"customer_id"`
	Points     int64 `gorm:"not null;default:0" json:"points"`
}
