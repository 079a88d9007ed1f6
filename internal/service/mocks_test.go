package service

import (
	"context"
	"errors"

	"github.com/paveldk/go-blog-api/models"
)

// Hand-rolled fn-field mocks for the repository interfaces. Each method
// delegates to the corresponding fn when set and returns zero values
// otherwise, so tests only wire the calls they care about.

var errStorage = errors.New("storage error")

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

type mockPostRepository struct {
	createFn        func(ctx context.Context, post models.Post) (models.Post, error)
	findByIDFn      func(ctx context.Context, postID int64) (models.Post, error)
	listPublishedFn func(ctx context.Context) ([]models.Post, error)
	updateFn        func(ctx context.Context, postID int64, title, content *string) (models.Post, error)
	setPublishedFn  func(ctx context.Context, postID int64, published bool) (models.Post, error)
	deleteFn        func(ctx context.Context, postID int64) error
}

func (m *mockPostRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return models.Post{}, nil
}

func (m *mockPostRepository) FindByID(ctx context.Context, postID int64) (models.Post, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, postID)
	}
	return models.Post{}, nil
}

func (m *mockPostRepository) ListPublished(ctx context.Context) ([]models.Post, error) {
	if m.listPublishedFn != nil {
		return m.listPublishedFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) Update(ctx context.Context, postID int64, title, content *string) (models.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, postID, title, content)
	}
	return models.Post{}, nil
}

func (m *mockPostRepository) SetPublished(ctx context.Context, postID int64, published bool) (models.Post, error) {
	if m.setPublishedFn != nil {
		return m.setPublishedFn(ctx, postID, published)
	}
	return models.Post{}, nil
}

func (m *mockPostRepository) Delete(ctx context.Context, postID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID)
	}
	return nil
}

type mockCommentRepository struct {
	createFn     func(ctx context.Context, comment models.Comment) (models.Comment, error)
	findByIDFn   func(ctx context.Context, commentID int64) (models.Comment, error)
	listByPostFn func(ctx context.Context, postID int64) ([]models.Comment, error)
	updateFn     func(ctx context.Context, commentID int64, content string) (models.Comment, error)
	deleteFn     func(ctx context.Context, commentID int64) error
}

func (m *mockCommentRepository) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return models.Comment{}, nil
}

func (m *mockCommentRepository) FindByID(ctx context.Context, commentID int64) (models.Comment, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, commentID)
	}
	return models.Comment{}, nil
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	if m.listByPostFn != nil {
		return m.listByPostFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, commentID int64, content string) (models.Comment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, commentID, content)
	}
	return models.Comment{}, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, commentID)
	}
	return nil
}
