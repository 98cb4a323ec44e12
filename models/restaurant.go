package models

import "time"

type Restaurant struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(100); not null" json:"name"`
	Unit         string `gorm:"type:varchar(100); not null" json:"unit"`
	MealCapacity int    `gorm:"not null" json:"meal_capacity"`
	Description  string `gorm:"type:text" json:"description"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
