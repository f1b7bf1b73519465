package dto

import "time"

type CreateEventInput struct {
	Title            string    `json:"title" validate:"required,max=160"`
	Subtitle         string    `json:"subtitle" validate:"omitempty,max=200"`
	Description      string    `json:"description" validate:"omitempty"`
	Date             time.Time `json:"date" validate:"required"`
	Location         string    `json:"location" validate:"required,max=200"`
	Price            string    `json:"price" validate:"omitempty,max=32"`
	Seats            int       `json:"seats" validate:"omitempty,gte=0"`
	Category         string    `json:"category" validate:"required"`
	ImageURL         string    `json:"image_url" validate:"omitempty,max=255"`
	OrganizerAddress string    `json:"organizer_address" validate:"omitempty,max=64"`
}

type UpdateEventInput struct {
	Title            *string    `json:"title" validate:"omitempty,max=160"`
	Subtitle         *string    `json:"subtitle" validate:"omitempty,max=200"`
	Description      *string    `json:"description"`
	Date             *time.Time `json:"date"`
	Location         *string    `json:"location" validate:"omitempty,max=200"`
	Price            *string    `json:"price" validate:"omitempty,max=32"`
	Seats            *int       `json:"seats" validate:"omitempty,gte=0"`
	Category         *string    `json:"category"`
	ImageURL         *string    `json:"image_url" validate:"omitempty,max=255"`
	OrganizerAddress *string    `json:"organizer_address" validate:"omitempty,max=64"`
}
