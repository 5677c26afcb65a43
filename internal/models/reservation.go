package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// NewID returns a 24-character hex identifier in MongoDB ObjectID form,
// whatever store is configured.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

type Reservation struct {
	ID string `gorm:"primaryKey;size:24" json:"id"`

	Name        string `gorm:"size:50;not null" json:"name"`
	Email       string `gorm:"size:254;not null" json:"email"`
	PhoneNumber string `gorm:"size:10;not null" json:"phoneNumber"`

	// Date is midnight of the reservation day in the restaurant time zone.
	Date   time.Time `gorm:"not null;index:idx_reservations_slot,priority:1" json:"date"`
	Time   string    `gorm:"size:8;not null;index:idx_reservations_slot,priority:2" json:"time"`
	Guests int       `gorm:"not null" json:"guests"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	return nil
}
