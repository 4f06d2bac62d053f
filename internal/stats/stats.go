// Package stats computes aggregate metrics over a snapshot of the blog
// collection. All functions are pure: no I/O, no mutation of the input.
package stats

import (
	"errors"

	"github.com/bloglist/bloglist-go/internal/model"
)

// ErrNoBlogs is returned by aggregates that are undefined on an empty
// collection.
var ErrNoBlogs = errors.New("no blogs in collection")

// AuthorBlogs is a per-author blog count.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is a per-author likes total.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums likes across all blogs. Empty collection sums to zero.
func TotalLikes(blogs []model.Blog) int {
	total := 0
	for i := range blogs {
		total += blogs[i].Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes. Ties go to the
// earliest blog in the input ordering.
func FavoriteBlog(blogs []model.Blog) (model.Blog, error) {
	if len(blogs) == 0 {
		return model.Blog{}, ErrNoBlogs
	}

	favorite := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > favorite.Likes {
			favorite = b
		}
	}
	return favorite, nil
}

// MostBlogs returns the author with the most blogs. Authors are ranked in
// first-appearance order, so ties go to whichever author appeared first in
// the input.
func MostBlogs(blogs []model.Blog) (AuthorBlogs, error) {
	if len(blogs) == 0 {
		return AuthorBlogs{}, ErrNoBlogs
	}

	counts := make(map[string]int)
	var order []string
	for i := range blogs {
		if _, seen := counts[blogs[i].Author]; !seen {
			order = append(order, blogs[i].Author)
		}
		counts[blogs[i].Author]++
	}

	top := AuthorBlogs{Author: order[0], Blogs: counts[order[0]]}
	for _, author := range order[1:] {
		if counts[author] > top.Blogs {
			top = AuthorBlogs{Author: author, Blogs: counts[author]}
		}
	}
	return top, nil
}

// MostLikes returns the author with the highest likes total, with the same
// first-appearance tie-break as MostBlogs.
func MostLikes(blogs []model.Blog) (AuthorLikes, error) {
	if len(blogs) == 0 {
		return AuthorLikes{}, ErrNoBlogs
	}

	totals := make(map[string]int)
	var order []string
	for i := range blogs {
		if _, seen := totals[blogs[i].Author]; !seen {
			order = append(order, blogs[i].Author)
		}
		totals[blogs[i].Author] += blogs[i].Likes
	}

	top := AuthorLikes{Author: order[0], Likes: totals[order[0]]}
	for _, author := range order[1:] {
		if totals[author] > top.Likes {
			top = AuthorLikes{Author: author, Likes: totals[author]}
		}
	}
	return top, nil
}
