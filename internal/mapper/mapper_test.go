package mapper

import (
	"testing"
	"time"

	"chatlog-admin-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMapperRoundTrip(t *testing.T) {
	m := NewChatMapper()

	phone := "+77001234567"
	notes := "called back"
	chat := &entity.Chat{
		Id:       uuid.New(),
		Phone:    &phone,
		Language: "ru",
		Status:   entity.ChatStatusContacted,
		Notes:    &notes,
		Metrics: entity.ChatMetrics{
			MessageCount:     7,
			AskedForContact:  true,
			HasUncertainty:   true,
			UncertaintyCount: 2,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	got := m.ChatToEntity(m.ChatToModel(chat))
	require.NotNil(t, got)
	assert.Equal(t, chat, got)

	assert.Nil(t, m.ChatToModel(nil))
	assert.Nil(t, m.ChatToEntity(nil))
}

func TestBlogMapperLocalizedFields(t *testing.T) {
	m := NewBlogMapper()

	post := &entity.BlogPost{
		Id:   uuid.New(),
		Slug: "kak-vybrat-podryadchika",
		Title: entity.LocalizedText{
			"ru": "Как выбрать подрядчика",
			"en": "How to choose a contractor",
		},
		Content:   entity.LocalizedText{"ru": "текст", "en": "text"},
		Keywords:  []string{"строительство", "ремонт"},
		Published: true,
	}

	got := m.BlogPostToEntity(m.BlogPostToModel(post))
	require.NotNil(t, got)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.Content, got.Content)
	assert.Equal(t, post.Keywords, got.Keywords)
	// Absent excerpt stays absent instead of becoming an empty map.
	assert.Nil(t, got.Excerpt)
}
