package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bloglist/bloglist-go/internal/model"
	"github.com/bloglist/bloglist-go/internal/repository"
)

var (
	ErrTitleOrURLMissing = errors.New("title or url missing")
	ErrBlogNotFound      = errors.New("blog not found")
	ErrUpdateForbidden   = errors.New("only the creator can update this blog")
	ErrDeleteForbidden   = errors.New("only the creator can delete this blog")
)

// BlogService is the ownership-enforced core: it combines the authenticated
// caller (threaded in explicitly by the handler), the blog store and the
// credential store. Mutations require the caller to be the blog's owner;
// the existence check always precedes the ownership check, so a missing
// blog reports not-found rather than forbidden.
type BlogService struct {
	blogs BlogStore
	users UserStore
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogs BlogStore, users UserStore) *BlogService {
	return &BlogService{blogs: blogs, users: users}
}

// List returns all blogs with their owners resolved to the public
// projection. Readable by anyone; no ownership filter.
func (s *BlogService) List(ctx context.Context) ([]model.BlogResponse, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, err
	}

	// Read-time join: owners fetched once per distinct user.
	owners := make(map[string]*model.UserRef)
	result := make([]model.BlogResponse, 0, len(blogs))
	for i := range blogs {
		ref, ok := owners[blogs[i].UserID]
		if !ok {
			ref = s.ownerRef(ctx, blogs[i].UserID)
			owners[blogs[i].UserID] = ref
		}
		result = append(result, toBlogResponse(&blogs[i], ref))
	}

	return result, nil
}

// Get returns a single blog with its owner projection, or ErrBlogNotFound.
func (s *BlogService) Get(ctx context.Context, id string) (model.BlogResponse, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return model.BlogResponse{}, ErrBlogNotFound
		}
		return model.BlogResponse{}, err
	}

	return toBlogResponse(blog, s.ownerRef(ctx, blog.UserID)), nil
}

// Create persists a new blog owned by the caller. Title and url are
// required and checked before anything is written; likes defaults to zero.
// The blog insert and the owned-list append are two writes with no
// transaction across them: if the append fails the error is logged and
// surfaced, but the blog row stays and is independently valid — the
// owned-list is a rebuildable index, not the source of truth for
// ownership.
func (s *BlogService) Create(ctx context.Context, user *model.User, req model.CreateBlogRequest) (model.BlogResponse, error) {
	if req.Title == "" || req.URL == "" {
		return model.BlogResponse{}, ErrTitleOrURLMissing
	}

	likes := req.Likes
	if likes < 0 {
		likes = 0
	}

	blog := &model.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		UserID: user.ID,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return model.BlogResponse{}, err
	}

	if err := s.users.AppendBlog(ctx, user.ID, blog.ID); err != nil {
		slog.Error("owned-list append failed after blog insert",
			"blog_id", blog.ID, "user_id", user.ID, "error", err)
		return model.BlogResponse{}, fmt.Errorf("appending blog to owner index: %w", err)
	}

	ref := &model.UserRef{Username: user.Username, Name: user.Name}
	return toBlogResponse(blog, ref), nil
}

// Update applies a partial update to a blog owned by the caller. Fields
// absent from the payload are left untouched. Existence is checked before
// ownership.
func (s *BlogService) Update(ctx context.Context, user *model.User, id string, req model.UpdateBlogRequest) (model.BlogResponse, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return model.BlogResponse{}, ErrBlogNotFound
		}
		return model.BlogResponse{}, err
	}

	if blog.UserID != user.ID {
		return model.BlogResponse{}, ErrUpdateForbidden
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.URL != nil {
		blog.URL = *req.URL
	}
	if req.Likes != nil {
		blog.Likes = *req.Likes
		if blog.Likes < 0 {
			blog.Likes = 0
		}
	}

	if err := s.blogs.Update(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			// Removed between the ownership check and the write.
			return model.BlogResponse{}, ErrBlogNotFound
		}
		return model.BlogResponse{}, err
	}

	ref := &model.UserRef{Username: user.Username, Name: user.Name}
	return toBlogResponse(blog, ref), nil
}

// Delete removes a blog owned by the caller. Existence is checked before
// ownership.
func (s *BlogService) Delete(ctx context.Context, user *model.User, id string) error {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return ErrBlogNotFound
		}
		return err
	}

	if blog.UserID != user.ID {
		return ErrDeleteForbidden
	}

	err = s.blogs.Delete(ctx, id)
	if errors.Is(err, repository.ErrBlogNotFound) {
		return ErrBlogNotFound
	}
	return err
}

// Snapshot returns the raw blog collection for the statistics engine.
func (s *BlogService) Snapshot(ctx context.Context) ([]model.Blog, error) {
	return s.blogs.List(ctx)
}

// ownerRef resolves a user id to the public owner projection. A dangling
// owner reference degrades to a response without the embedded user rather
// than failing the whole read.
func (s *BlogService) ownerRef(ctx context.Context, userID string) *model.UserRef {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			slog.Warn("owner lookup failed", "user_id", userID, "error", err)
		}
		return nil
	}
	return &model.UserRef{Username: user.Username, Name: user.Name}
}

func toBlogResponse(blog *model.Blog, owner *model.UserRef) model.BlogResponse {
	return model.BlogResponse{
		ID:     blog.ID,
		Title:  blog.Title,
		Author: blog.Author,
		URL:    blog.URL,
		Likes:  blog.Likes,
		User:   owner,
	}
}
