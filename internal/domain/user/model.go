package user

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Phone        string    `gorm:"not null;default:''"`
	PicturePath  string    `gorm:"not null;default:''"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type UpdateProfileInput struct {
	Name  *string
	Email *string
	Phone *string
}
