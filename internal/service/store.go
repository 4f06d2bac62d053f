package service

import (
	"context"

	"github.com/bloglist/bloglist-go/internal/model"
)

// UserStore is the credential-store surface the services need. Satisfied by
// repository.UserRepository; tests substitute in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	AppendBlog(ctx context.Context, userID, blogID string) error
	ListBlogIDs(ctx context.Context, userID string) ([]string, error)
}

// BlogStore is the blog-repository surface. Satisfied by
// repository.BlogRepository.
type BlogStore interface {
	Create(ctx context.Context, blog *model.Blog) error
	GetByID(ctx context.Context, id string) (*model.Blog, error)
	List(ctx context.Context) ([]model.Blog, error)
	Update(ctx context.Context, blog *model.Blog) error
	Delete(ctx context.Context, id string) error
}
