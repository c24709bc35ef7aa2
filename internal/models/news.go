package models

import "time"

type NewsCategory string

const (
	CategoryNews  NewsCategory = "news"
	CategoryEvent NewsCategory = "event"
)

type News struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Title     string       `gorm:"not null" json:"title"`
	Body      string       `gorm:"type:text" json:"body"`
	Category  NewsCategory `gorm:"not null;default:news;index" json:"category"`
	EventDate *time.Time   `json:"eventDate,omitempty"`
	Published bool         `gorm:"not null;default:false;index" json:"published"`
	UserID    uint         `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (n *News) OwnerID() uint {
	return n.UserID
}
