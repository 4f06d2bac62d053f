package service

import (
	"context"
	"fmt"

	"github.com/bloglist/bloglist-go/internal/model"
	"github.com/bloglist/bloglist-go/internal/repository"
)

// In-memory store fakes. They return the repository sentinel errors the
// real MySQL-backed implementations return, so service error mapping is
// exercised for real.

type fakeUserStore struct {
	users     map[string]*model.User // by id
	blogIDs   map[string][]string
	nextID    int
	appendErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:   make(map[string]*model.User),
		blogIDs: make(map[string][]string),
	}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	var users []model.User
	for i := 1; i <= f.nextID; i++ {
		if u, ok := f.users[fmt.Sprintf("user-%d", i)]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (f *fakeUserStore) AppendBlog(_ context.Context, userID, blogID string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.blogIDs[userID] = append(f.blogIDs[userID], blogID)
	return nil
}

func (f *fakeUserStore) ListBlogIDs(_ context.Context, userID string) ([]string, error) {
	return f.blogIDs[userID], nil
}

type fakeBlogStore struct {
	blogs  map[string]*model.Blog
	order  []string
	nextID int
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: make(map[string]*model.Blog)}
}

func (f *fakeBlogStore) Create(_ context.Context, blog *model.Blog) error {
	f.nextID++
	blog.ID = fmt.Sprintf("blog-%d", f.nextID)
	stored := *blog
	f.blogs[blog.ID] = &stored
	f.order = append(f.order, blog.ID)
	return nil
}

func (f *fakeBlogStore) GetByID(_ context.Context, id string) (*model.Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return nil, repository.ErrBlogNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBlogStore) List(_ context.Context) ([]model.Blog, error) {
	var blogs []model.Blog
	for _, id := range f.order {
		if b, ok := f.blogs[id]; ok {
			blogs = append(blogs, *b)
		}
	}
	return blogs, nil
}

func (f *fakeBlogStore) Update(_ context.Context, blog *model.Blog) error {
	if _, ok := f.blogs[blog.ID]; !ok {
		return repository.ErrBlogNotFound
	}
	stored := *blog
	f.blogs[blog.ID] = &stored
	return nil
}

func (f *fakeBlogStore) Delete(_ context.Context, id string) error {
	if _, ok := f.blogs[id]; !ok {
		return repository.ErrBlogNotFound
	}
	delete(f.blogs, id)
	return nil
}
