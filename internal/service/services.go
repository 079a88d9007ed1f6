package service

import (
	"github.com/paveldk/go-blog-api/internal/config"
	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/store"
)

// Services bundles every service implementation behind one value so the
// transport layer can be wired with a single dependency.
type Services struct {
	AuthService    AuthService
	PostService    PostService
	CommentService CommentService
}

// NewServices constructs all services over the given repositories.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.App, logger),
		PostService:    NewPostService(repositories.PostRepository, logger),
		CommentService: NewCommentService(repositories.CommentRepository, repositories.PostRepository, logger),
	}
}
