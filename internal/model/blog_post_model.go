package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BlogPost struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug      string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Title     datatypes.JSON `gorm:"not null"`
	Content   datatypes.JSON `gorm:"not null"`
	Excerpt   datatypes.JSON
	Category  *string `gorm:"type:varchar(255)"`
	Keywords  datatypes.JSON
	Published bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
