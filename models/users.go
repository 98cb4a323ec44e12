package models

import "time"

// InstitutionalEmailSuffix restricts registration to accounts of the
// sponsoring university.
const InstitutionalEmailSuffix = "@usp.br"

type User struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Username          string  `gorm:"type:varchar(150); unique; not null" json:"username"`
	Email             string  `gorm:"type:varchar(255); unique; not null" json:"email"`
	Password          string  `gorm:"type:varchar(255); not null" json:"-"`
	Course            string  `gorm:"type:varchar(100)" json:"course"`
	IsAdmin           bool    `gorm:"not null; default:false" json:"is_admin"`
	EmailConfirmed    bool    `gorm:"not null; default:false" json:"email_confirmed"`
	ConfirmationToken *string `gorm:"type:varchar(100)" json:"-"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Role maps the admin flag onto the role string carried in JWT claims.
func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "student"
}
