package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/bloglist/bloglist-go/internal/model"
)

var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository handles blog persistence operations.
type BlogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create inserts a new blog, assigning a fresh id on the blog struct.
// The owner column is written once here and never updated afterwards.
func (r *BlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	blog.ID = uuid.NewString()

	query := `INSERT INTO blogs (id, title, author, url, likes, user_id) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes, blog.UserID)
	return err
}

// GetByID retrieves a blog by id.
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	query := `SELECT id, title, author, url, likes, user_id, created_at, updated_at FROM blogs WHERE id = ?`

	blog := &model.Blog{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID, &blog.Title, &blog.Author, &blog.URL,
		&blog.Likes, &blog.UserID, &blog.CreatedAt, &blog.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	return blog, nil
}

// List retrieves all blogs in creation order.
func (r *BlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	query := `SELECT id, title, author, url, likes, user_id, created_at, updated_at FROM blogs ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []model.Blog
	for rows.Next() {
		var b model.Blog
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.URL,
			&b.Likes, &b.UserID, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}

	return blogs, rows.Err()
}

// Update persists the blog's mutable fields. The owner column is not part
// of the statement. Returns ErrBlogNotFound if the id no longer exists;
// this relies on clientFoundRows=true in the DSN so affected-rows counts
// matched rows rather than changed rows.
func (r *BlogRepository) Update(ctx context.Context, blog *model.Blog) error {
	query := `UPDATE blogs SET title = ?, author = ?, url = ?, likes = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, blog.Title, blog.Author, blog.URL, blog.Likes, blog.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBlogNotFound
	}

	return nil
}

// Delete removes a blog by id. Returns ErrBlogNotFound if no row matched.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM blogs WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBlogNotFound
	}

	return nil
}
