package model

import "time"

type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusPaid    PaymentStatus = "paid"
)

// Payment is one rent installment owed by a renter for a property.
// Status only ever moves pending -> paid; a paid payment is terminal.
type Payment struct {
	ID           string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RenterID     string        `gorm:"not null;index;type:uuid" json:"renter_id"`
	PropertyID   string        `gorm:"not null;index;type:uuid" json:"property_id"`
	Amount       float64       `gorm:"not null;type:decimal(12,2)" json:"amount"`
	Currency     string        `gorm:"not null;type:varchar(3);default:'USD'" json:"currency"`
	Status       PaymentStatus `gorm:"not null;default:'pending';index;type:varchar(20)" json:"status"`
	DueDate      time.Time     `gorm:"not null;index" json:"due_date"`
	PaidAt       *time.Time    `json:"paid_at,omitempty"`
	ProcessorRef *string       `gorm:"index" json:"processor_ref,omitempty"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
}
