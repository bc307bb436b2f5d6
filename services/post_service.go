package services

import (
	"context"
	"errors"
	"fmt"

	"postapi/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// FindAll returns every post in the store's natural order.
func (s *PostService) FindAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByPk looks a post up by primary key. found is false when no row
// matches; err is only set for storage failures.
func (s *PostService) FindByPk(ctx context.Context, id string) (post *models.Post, found bool, err error) {
	var p models.Post
	err = s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

func (s *PostService) Create(ctx context.Context, fields models.PostFields) (*models.Post, error) {
	post := fields.NewPost()
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Update overwrites the present fields of an existing post. It returns
// ErrPostNotFound when id matches nothing.
func (s *PostService) Update(ctx context.Context, id string, fields models.PostFields) (*models.Post, error) {
	post, found, err := s.FindByPk(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("update post %s: %w", id, ErrPostNotFound)
	}

	columns := fields.Columns()
	if len(columns) == 0 {
		return post, nil
	}
	if err := s.db.WithContext(ctx).Model(post).Updates(columns).Error; err != nil {
		return nil, err
	}

	fields.ApplyTo(post)
	return post, nil
}

// Destroy permanently removes an existing post. It returns ErrPostNotFound
// when id matches nothing.
func (s *PostService) Destroy(ctx context.Context, id string) error {
	post, found, err := s.FindByPk(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("delete post %s: %w", id, ErrPostNotFound)
	}

	return s.db.WithContext(ctx).Delete(post).Error
}
