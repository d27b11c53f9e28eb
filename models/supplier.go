package models

import "time"

// Supplier is an external party products are sourced from.
type Supplier struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Supplier model.
func (s Supplier) TableName() string {
	return "suppliers"
}
