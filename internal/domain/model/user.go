package model

type User struct {
	ID                int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email             string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash      string `gorm:"type:varchar(255);not null" json:"-"`
	FirstName         string `gorm:"type:varchar(100)" json:"first_name"`
	LastName          string `gorm:"type:varchar(100)" json:"last_name"`
	Phone             string `gorm:"type:varchar(32)" json:"phone"`
	MailingList       bool   `gorm:"not null;default:false" json:"mailing_list"`
	PreferredDelivery string `gorm:"type:varchar(64)" json:"preferred_delivery"`
	ProfileImage      string `gorm:"type:text" json:"profile_image"`
	SecretQuestion    string `gorm:"type:varchar(255)" json:"-"`
	SecretAnswerHash  string `gorm:"type:varchar(255)" json:"-"`
}
