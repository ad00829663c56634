package specification

import "gorm.io/gorm"

// BySlug filters blog posts by their slug.
type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

// PublishedOnly restricts to publicly visible posts.
type PublishedOnly struct{}

func (s PublishedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("published = TRUE")
}
