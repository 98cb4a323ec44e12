package models

import "time"

// Menu is one dated menu entry for a restaurant. Several entries per
// restaurant and day are allowed; the entry with the latest date is the
// restaurant's current menu.
type Menu struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	RestaurantID     uint       `gorm:"not null; index" json:"restaurant_id"`
	Restaurant       Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Date             time.Time  `gorm:"type:date; not null" json:"date"`
	MealType         string     `gorm:"type:varchar(50); not null" json:"meal_type"`
	SideDish         string     `gorm:"type:varchar(100)" json:"side_dish"`
	MainDish         string     `gorm:"type:varchar(100); not null" json:"main_dish"`
	SecondDish       string     `gorm:"type:varchar(100)" json:"second_dish"`
	VegetarianOption string     `gorm:"type:varchar(100)" json:"vegetarian_option"`
	Salads           string     `gorm:"type:varchar(200)" json:"salads"`
	Dessert          string     `gorm:"type:varchar(100)" json:"dessert"`
	Extras           string     `gorm:"type:varchar(100)" json:"extras"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
