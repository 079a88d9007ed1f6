package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/models"
)

// userRepository implements [UserRepository] against the "users" table.
// Methods log through the context-scoped logger so entries carry the
// request trace ID.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the
// server-assigned ID and CreatedAt, read back through the RETURNING clause
// of [createUser]. A unique violation on the email column comes back as
// [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.Role)

	var saved models.User
	if err := row.Scan(&saved.ID, &saved.Username, &saved.Email, &saved.PasswordHash, &saved.Role, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error saving user")

		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, r.db.wrapUnexpected(ctx, err)
	}

	return saved, nil
}

// FindUserByEmail retrieves the user record whose email matches exactly.
// Returns [ErrUserNotFound] when no such user exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(&found.ID, &found.Username, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, r.db.wrapUnexpected(ctx, err)
	}

	return found, nil
}

// FindUserByID retrieves a user record by primary key.
// Returns [ErrUserNotFound] when no such user exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Scan(&found.ID, &found.Username, &found.Email, &found.PasswordHash, &found.Role, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error finding user")
		return models.User{}, r.db.wrapUnexpected(ctx, err)
	}

	return found, nil
}
