package model

import "time"

// User is a row on the users table. Password holds the bcrypt hash and never
// leaves the API.
type User struct {
	ID            string    `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	Username      string    `json:"username" gorm:"column:username;type:VARCHAR(64);not null"`
	Email         string    `json:"email" gorm:"column:email;type:VARCHAR(160);not null;uniqueIndex"`
	Password      string    `json:"-" gorm:"column:password;type:VARCHAR(128);not null"`
	ImageURL      string    `json:"image_url" gorm:"column:image_url;type:VARCHAR(255)"`
	WalletAddress string    `json:"wallet_address" gorm:"column:wallet_address;type:VARCHAR(64)"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}
