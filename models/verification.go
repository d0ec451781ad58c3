package models

import "time"

// Verification is the audit record written for every scored screenshot, so
// operators can review past verdicts and disputed payments.
type Verification struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint `gorm:"index;not null"`
	User      User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	FileName  string `gorm:"size:255;not null"`
	StorePath string `gorm:"column:store_path;size:512"`

	// Extracted fields kept flat for querying; the full record rides in RawText.
	PaymentApp     string   `gorm:"size:32"`
	Status         string   `gorm:"size:32"`
	Amount         *float64 `gorm:"type:numeric"`
	ToPerson       *string  `gorm:"size:255"`
	TransactionRef *string  `gorm:"size:255"`

	Verified       bool    `gorm:"index"`
	Score          float64 `gorm:"not null"`
	Reasons        string  `gorm:"size:2048"` // "; "-joined failure reasons
	TamperDetected bool
	Blurry         bool

	RawText string `gorm:"type:text"`
}
