package models

import "time"

// Report reasons a user can pick when flagging a review.
const (
	ReasonInappropriate = "inappropriate"
	ReasonOffensive     = "offensive"
	ReasonSpam          = "spam"
	ReasonHarassment    = "harassment"
	ReasonOther         = "other"
)

// Report statuses. A report starts under review and ends upheld or
// dismissed; terminal statuses never transition again.
const (
	ReportUnderReview = "under_review"
	ReportUpheld      = "upheld"
	ReportDismissed   = "dismissed"
)

type Report struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReviewID  uint      `gorm:"not null; index" json:"review_id"`
	Review    Review    `gorm:"foreignKey:ReviewID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"review,omitempty"`
	UserID    uint      `gorm:"not null; index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Reason    string    `gorm:"type:varchar(20); not null" json:"reason"`
	Status    string    `gorm:"type:varchar(20); not null; default:'under_review'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// ValidReason reports whether reason is one of the fixed enumeration.
func ValidReason(reason string) bool {
	switch reason {
	case ReasonInappropriate, ReasonOffensive, ReasonSpam, ReasonHarassment, ReasonOther:
		return true
	}
	return false
}
