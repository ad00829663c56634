package model

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Phone               *string   `gorm:"type:varchar(32)"`
	Name                *string   `gorm:"type:varchar(255)"`
	ProjectType         *string   `gorm:"type:varchar(255)"`
	Language            string    `gorm:"type:varchar(8);not null;default:'ru'"`
	Status              string    `gorm:"type:chat_status;not null;default:'new';index"`
	Notes               *string   `gorm:"type:varchar(5000)"`
	UserAgent           *string   `gorm:"type:text"`
	IpAddress           *string   `gorm:"type:varchar(64)"`
	MessageCount        int       `gorm:"not null;default:0"`
	HasPriceObjection   bool      `gorm:"not null;default:false"`
	HasNegativeResponse bool      `gorm:"not null;default:false"`
	HasName             bool      `gorm:"not null;default:false"`
	AskedForContact     bool      `gorm:"not null;default:false"`
	HasUncertainty      bool      `gorm:"not null;default:false"`
	UncertaintyCount    int       `gorm:"not null;default:0"`
	CreatedAt           time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`

	Messages []ChatMessage `gorm:"foreignKey:ChatId;constraint:OnDelete:CASCADE"`
}

func (Chat) TableName() string {
	return "chats"
}
