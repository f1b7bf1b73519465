package model

import "time"

// Event is a row on the events table.
type Event struct {
	ID               string    `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	Title            string    `json:"title" gorm:"column:title;type:VARCHAR(160);not null"`
	Subtitle         string    `json:"subtitle" gorm:"column:subtitle;type:VARCHAR(200)"`
	Description      string    `json:"description" gorm:"column:description;type:TEXT"`
	Date             time.Time `json:"date" gorm:"column:date;type:timestamptz;not null"`
	Location         string    `json:"location" gorm:"column:location;type:VARCHAR(200);not null"`
	Price            string    `json:"price" gorm:"column:price;type:VARCHAR(32);not null;default:Free"`
	Seats            int       `json:"seats" gorm:"column:seats;not null;default:0"`
	SeatsTaken       int       `json:"seats_taken" gorm:"column:seats_taken;not null;default:0"`
	Category         string    `json:"category" gorm:"column:category;type:VARCHAR(32);not null"`
	ImageURL         string    `json:"image_url" gorm:"column:image_url;type:VARCHAR(255)"`
	CreatedBy        string    `json:"created_by" gorm:"column:created_by;type:uuid"`
	OrganizerAddress string    `json:"organizer_address" gorm:"column:organizer_address;type:VARCHAR(64)"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}
