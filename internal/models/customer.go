package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SegmentRetail    = "retail"
	SegmentPremium   = "premium"
	SegmentSME       = "sme"
	SegmentCorporate = "corporate"

	RiskRatingLow     = "LOW"
	RiskRatingMedium  = "MEDIUM"
	RiskRatingHigh    = "HIGH"
	RiskRatingUnrated = "UNRATED"

	KYCStatusPending  = "PENDING"
	KYCStatusVerified = "VERIFIED"
	KYCStatusRejected = "REJECTED"
)

// Segments lists customer segments in reporting order.
var Segments = []string{SegmentRetail, SegmentPremium, SegmentSME, SegmentCorporate}

// Customer is a bank customer profile. Survey scores are optional.
type Customer struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Segment            string     `gorm:"type:varchar(20);not null;index" json:"segment"`
	RiskRating         string     `gorm:"type:varchar(10)" json:"risk_rating,omitempty"`
	KYCStatus          string     `gorm:"type:varchar(10);not null;default:'PENDING'" json:"kyc_status"`
	Gender             string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	City               string     `gorm:"type:varchar(100)" json:"city,omitempty"`
	Region             string     `gorm:"type:varchar(100)" json:"region,omitempty"`
	AcquisitionChannel string     `gorm:"type:varchar(40)" json:"acquisition_channel,omitempty"`
	SatisfactionScore  *int       `json:"satisfaction_score,omitempty"`
	NPSScore           *int       `gorm:"column:nps_score" json:"nps_score,omitempty"`
	CreatedAt          time.Time  `gorm:"not null;index" json:"created_at"`
	ClosedAt           *time.Time `gorm:"index" json:"closed_at,omitempty"`
}

func (Customer) TableName() string {
	return "customers"
}

// BeforeCreate hook for Customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.KYCStatus == "" {
		c.KYCStatus = KYCStatusPending
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return nil
}

// ActiveAt reports whether the customer relationship existed and was open at t.
func (c Customer) ActiveAt(t time.Time) bool {
	if c.CreatedAt.After(t) {
		return false
	}
	return c.ClosedAt == nil || c.ClosedAt.After(t)
}

// Rating returns the risk rating, UNRATED when none was assigned.
func (c Customer) Rating() string {
	switch c.RiskRating {
	case RiskRatingLow, RiskRatingMedium, RiskRatingHigh:
		return c.RiskRating
	}
	return RiskRatingUnrated
}
