package store

import "github.com/paveldk/go-blog-api/internal/logger"

// Repositories bundles every repository implementation behind one value so
// the service layer can be wired with a single dependency.
type Repositories struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository
}

// NewRepositories constructs all SQL-backed repositories over the shared
// database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
	}
}
