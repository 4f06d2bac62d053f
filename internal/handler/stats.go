package handler

import (
	"net/http"

	"github.com/bloglist/bloglist-go/internal/model"
	"github.com/bloglist/bloglist-go/internal/service"
	"github.com/bloglist/bloglist-go/internal/stats"
)

// StatsHandler serves aggregate metrics computed over a snapshot of the
// blog collection.
type StatsHandler struct {
	service *service.BlogService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.BlogService) *StatsHandler {
	return &StatsHandler{service: svc}
}

type statsResponse struct {
	Blogs      int                 `json:"blogs"`
	TotalLikes int                 `json:"totalLikes"`
	Favorite   *model.BlogResponse `json:"favorite,omitempty"`
	MostBlogs  *stats.AuthorBlogs  `json:"mostBlogs,omitempty"`
	MostLikes  *stats.AuthorLikes  `json:"mostLikes,omitempty"`
}

// HandleStats handles GET /api/stats requests. The per-author and favorite
// aggregates are undefined on an empty collection and omitted then.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.Snapshot(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	resp := statsResponse{
		Blogs:      len(blogs),
		TotalLikes: stats.TotalLikes(blogs),
	}

	if favorite, err := stats.FavoriteBlog(blogs); err == nil {
		resp.Favorite = &model.BlogResponse{
			ID:     favorite.ID,
			Title:  favorite.Title,
			Author: favorite.Author,
			URL:    favorite.URL,
			Likes:  favorite.Likes,
		}
	}
	if mostBlogs, err := stats.MostBlogs(blogs); err == nil {
		resp.MostBlogs = &mostBlogs
	}
	if mostLikes, err := stats.MostLikes(blogs); err == nil {
		resp.MostLikes = &mostLikes
	}

	writeJSON(w, http.StatusOK, resp)
}
