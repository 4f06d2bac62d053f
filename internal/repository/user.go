package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/bloglist/bloglist-go/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository is the credential store: user records plus the
// denormalized per-user index of owned blog ids.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user, assigning a fresh id on the user struct.
// A username collision maps to ErrDuplicateUsername.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = uuid.NewString()

	query := `INSERT INTO users (id, username, name, password_hash) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Name, user.PasswordHash); err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateUsername
		}
		return err
	}

	return nil
}

// GetByUsername retrieves a user by username. Usernames are case-sensitive;
// the column uses a binary collation.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, name, password_hash, created_at, updated_at FROM users WHERE username = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, username, name, password_hash, created_at, updated_at FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// List retrieves all users in registration order.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, username, name, password_hash, created_at, updated_at FROM users ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// AppendBlog appends a blog id to the user's owned-list index. The index is
// append-only and rebuildable from the blogs table; it is not the source of
// truth for ownership.
func (r *UserRepository) AppendBlog(ctx context.Context, userID, blogID string) error {
	query := `INSERT INTO user_blogs (user_id, blog_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, userID, blogID)
	return err
}

// ListBlogIDs retrieves the user's owned blog ids in insertion order.
func (r *UserRepository) ListBlogIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT blog_id FROM user_blogs WHERE user_id = ? ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *UserRepository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
