package model

import "time"

// 手動で在庫を設定したときの履歴
type InventoryAdjustment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	OldStock  int64     `gorm:"not null" json:"old_stock"`
	NewStock  int64     `gorm:"not null" json:"new_stock"`
	Reason    string    `gorm:"type:varchar(255)" json:"reason"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
