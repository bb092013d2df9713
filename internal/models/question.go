package models

import "gorm.io/gorm"

type Question struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Question   string         `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string         `gorm:"type:text;not null" json:"answer"`
	Category   uint           `gorm:"column:category;not null;index" json:"category"`
	Difficulty int            `gorm:"not null;default:1" json:"difficulty"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
