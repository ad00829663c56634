package mapper

import (
	"encoding/json"

	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/model"

	"gorm.io/datatypes"
)

type BlogMapper struct{}

func NewBlogMapper() *BlogMapper {
	return &BlogMapper{}
}

func (m *BlogMapper) BlogPostToEntity(p *model.BlogPost) *entity.BlogPost {
	if p == nil {
		return nil
	}

	return &entity.BlogPost{
		Id:        p.Id,
		Slug:      p.Slug,
		Title:     unmarshalLocalized(p.Title),
		Content:   unmarshalLocalized(p.Content),
		Excerpt:   unmarshalLocalized(p.Excerpt),
		Category:  p.Category,
		Keywords:  unmarshalKeywords(p.Keywords),
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *BlogMapper) BlogPostToModel(p *entity.BlogPost) *model.BlogPost {
	if p == nil {
		return nil
	}

	return &model.BlogPost{
		Id:        p.Id,
		Slug:      p.Slug,
		Title:     marshalJSON(p.Title),
		Content:   marshalJSON(p.Content),
		Excerpt:   marshalJSON(p.Excerpt),
		Category:  p.Category,
		Keywords:  marshalJSON(p.Keywords),
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func marshalJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

func unmarshalLocalized(data datatypes.JSON) entity.LocalizedText {
	if len(data) == 0 {
		return nil
	}
	var out entity.LocalizedText
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func unmarshalKeywords(data datatypes.JSON) []string {
	if len(data) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
