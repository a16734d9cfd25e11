package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"messenger-service/internal/models"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserRepository abstracts user persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) (models.User, error)
	GetByCredentials(ctx context.Context, username, password string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, fragment string) ([]models.User, error)
}

// UserRepo is a sqlx implementation of UserRepository.
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo constructs a UserRepo.
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts a new account with a fresh id and creation timestamp.
// Passwords are stored verbatim; the login contract is an exact plaintext
// match, so hashing here would break compatibility.
func (r *UserRepo) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	user := models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		CreatedAt: models.NewTimestamp(),
	}

	query := r.db.Rebind(`INSERT INTO users (id, username, password, created_at) VALUES (?, ?, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Password, user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// GetByCredentials looks up a user by exact username and password match.
func (r *UserRepo) GetByCredentials(ctx context.Context, username, password string) (models.User, error) {
	var user models.User
	query := r.db.Rebind(`SELECT id, username, password, created_at FROM users WHERE username = ? AND password = ?`)
	err := r.db.GetContext(ctx, &user, query, username, password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, err
}

// GetByUsername fetches a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	query := r.db.Rebind(`SELECT id, username, password, created_at FROM users WHERE username = ?`)
	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// ListUsers returns every user in the directory.
func (r *UserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users, `SELECT id, username, password, created_at FROM users`)
	return users, err
}

// SearchUsers returns users whose username contains fragment as a
// case-sensitive substring. An empty fragment matches everyone.
func (r *UserRepo) SearchUsers(ctx context.Context, fragment string) ([]models.User, error) {
	var users []models.User
	query := r.db.Rebind(`SELECT id, username, password, created_at FROM users WHERE username LIKE ?`)
	err := r.db.SelectContext(ctx, &users, query, "%"+fragment+"%")
	return users, err
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
