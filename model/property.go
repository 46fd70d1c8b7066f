package model

import "time"

// Property is the rented unit a payment belongs to. Managed elsewhere;
// this service only reads it for checkout descriptions.
type Property struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Address   string    `gorm:"not null" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
