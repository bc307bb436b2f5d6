package models

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Content     string    `json:"content" gorm:"type:text"`
	Tags        string    `json:"tags"`
	IsPublished bool      `json:"ispublished" gorm:"column:ispublished;default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PostFields holds the mutable columns sent by a client. A nil field was
// absent from the request body.
type PostFields struct {
	Title       *string
	Content     *string
	Tags        *string
	IsPublished *bool
}

// PostFieldsFromBody coerces the mutable fields out of an untyped JSON body.
func PostFieldsFromBody(body map[string]interface{}) (PostFields, error) {
	var fields PostFields

	for key, dst := range map[string]**string{
		"title":   &fields.Title,
		"content": &fields.Content,
		"tags":    &fields.Tags,
	} {
		raw, ok := body[key]
		if !ok || raw == nil {
			continue
		}
		value, err := cast.ToStringE(raw)
		if err != nil {
			return PostFields{}, fmt.Errorf("%s: %w", key, err)
		}
		*dst = &value
	}

	if raw, ok := body["ispublished"]; ok && raw != nil {
		published, err := cast.ToBoolE(raw)
		if err != nil {
			return PostFields{}, fmt.Errorf("ispublished: %w", err)
		}
		fields.IsPublished = &published
	}

	return fields, nil
}

// NewPost builds an unsaved post; absent fields stay at their zero value.
func (f PostFields) NewPost() *Post {
	post := &Post{}
	f.ApplyTo(post)
	return post
}

// ApplyTo overwrites the fields of post that are present in f.
func (f PostFields) ApplyTo(post *Post) {
	if f.Title != nil {
		post.Title = *f.Title
	}
	if f.Content != nil {
		post.Content = *f.Content
	}
	if f.Tags != nil {
		post.Tags = *f.Tags
	}
	if f.IsPublished != nil {
		post.IsPublished = *f.IsPublished
	}
}

// Columns maps the present fields to their column names for a partial update.
func (f PostFields) Columns() map[string]interface{} {
	columns := map[string]interface{}{}
	if f.Title != nil {
		columns["title"] = *f.Title
	}
	if f.Content != nil {
		columns["content"] = *f.Content
	}
	if f.Tags != nil {
		columns["tags"] = *f.Tags
	}
	if f.IsPublished != nil {
		columns["ispublished"] = *f.IsPublished
	}
	return columns
}
