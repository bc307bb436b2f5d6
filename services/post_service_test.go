package services

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"postapi/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Post{}))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func fullFields(title string) models.PostFields {
	return models.PostFields{
		Title:       strPtr(title),
		Content:     strPtr("content of " + title),
		Tags:        strPtr("go,gorm"),
		IsPublished: boolPtr(true),
	}
}

func TestPostService_CreateAndFind(t *testing.T) {
	svc := NewPostService(setupTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, fullFields("first"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	post, found, err := svc.FindByPk(ctx, strconv.Itoa(int(created.ID)))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "first", post.Title)
	assert.Equal(t, "content of first", post.Content)
	assert.Equal(t, "go,gorm", post.Tags)
	assert.True(t, post.IsPublished)
}

func TestPostService_FindByPkAbsent(t *testing.T) {
	svc := NewPostService(setupTestDB(t))

	post, found, err := svc.FindByPk(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, post)
}

func TestPostService_FindAll(t *testing.T) {
	svc := NewPostService(setupTestDB(t))
	ctx := context.Background()

	posts, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	for _, title := range []string{"a", "b"} {
		_, err := svc.Create(ctx, fullFields(title))
		require.NoError(t, err)
	}

	posts, err = svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostService_UpdateOverwritesPresentFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPostService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullFields("before"))
	require.NoError(t, err)
	id := strconv.Itoa(int(created.ID))

	updated, err := svc.Update(ctx, id, models.PostFields{
		Title:       strPtr("after"),
		IsPublished: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "after", updated.Title)
	assert.False(t, updated.IsPublished)

	var stored models.Post
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "after", stored.Title)
	assert.Equal(t, "content of before", stored.Content)
	assert.False(t, stored.IsPublished)
}

func TestPostService_UpdateAbsent(t *testing.T) {
	svc := NewPostService(setupTestDB(t))

	_, err := svc.Update(context.Background(), "42", fullFields("x"))
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostService_Destroy(t *testing.T) {
	svc := NewPostService(setupTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, fullFields("doomed"))
	require.NoError(t, err)
	id := strconv.Itoa(int(created.ID))

	require.NoError(t, svc.Destroy(ctx, id))

	_, found, err := svc.FindByPk(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)

	assert.ErrorIs(t, svc.Destroy(ctx, id), ErrPostNotFound)
}

func TestPostService_StorageErrors(t *testing.T) {
	storageErr := errors.New("connection refused")
	ctx := context.Background()

	t.Run("find all", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "posts"`).WillReturnError(storageErr)

		_, err := NewPostService(db).FindAll(ctx)
		assert.ErrorIs(t, err, storageErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("find by pk", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1`).WillReturnError(storageErr)

		_, found, err := NewPostService(db).FindByPk(ctx, "1")
		assert.ErrorIs(t, err, storageErr)
		assert.False(t, found)
	})

	t.Run("update lookup", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1`).WillReturnError(storageErr)

		_, err := NewPostService(db).Update(ctx, "1", fullFields("x"))
		assert.ErrorIs(t, err, storageErr)
		assert.NotErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("create", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "posts"`).WillReturnError(storageErr)
		mock.ExpectRollback()

		_, err := NewPostService(db).Create(ctx, fullFields("x"))
		assert.ErrorIs(t, err, storageErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
