package models

import "time"

type Review struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null; index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuID       uint       `gorm:"not null; index" json:"menu_id"`
	Menu         Menu       `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserID       uint       `gorm:"not null; index" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Stars        int        `gorm:"not null" json:"stars"`
	Comment      string     `gorm:"type:text" json:"comment"`
	// Course is copied from the author at submission time so later course
	// changes do not rewrite review history.
	Course    string    `gorm:"type:varchar(100)" json:"course"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
