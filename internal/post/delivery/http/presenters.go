package http

import (
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/post"
	"monitor-srv/pkg/paginator"
	"monitor-srv/pkg/response"
)

type listPostsReq struct {
	SourceIDs []string
	DateFrom  *time.Time
	DateTo    *time.Time
	AuthorID  string
	Page      int
	Limit     int64
}

func (r listPostsReq) toInput() post.ListInput {
	return post.ListInput{
		SourceIDs: r.SourceIDs,
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
		AuthorID:  r.AuthorID,
		PagQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type postItem struct {
	ID          string             `json:"id"`
	Message     string             `json:"message,omitempty"`
	CreatedTime *response.DateTime `json:"created_time,omitempty"`
	AuthorID    string             `json:"author_id,omitempty"`
	AuthorName  string             `json:"author_name,omitempty"`
	SourceID    string             `json:"source_id,omitempty"`
	SourceName  string             `json:"source_name,omitempty"`
	Reactions   int                `json:"reactions"`
	Comments    int                `json:"comments"`
	Shares      int                `json:"shares"`
}

type listPostsResp struct {
	Items     []postItem                  `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListPostsResp(o post.ListOutput) listPostsResp {
	items := make([]postItem, 0, len(o.Posts))
	for _, p := range o.Posts {
		items = append(items, newPostItem(p))
	}
	return listPostsResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}

func newPostItem(p model.Post) postItem {
	item := postItem{
		ID:         p.ID,
		Message:    p.Message,
		AuthorID:   p.AuthorID(),
		AuthorName: p.AuthorName(),
		SourceID:   p.SourceID,
		SourceName: p.SourceName,
		Reactions:  p.ReactionSummaryCount() + p.LegacyLikeCount(),
		Comments:   len(p.CommentList()),
		Shares:     p.ShareCount(),
	}
	if p.CreatedTime != nil {
		dt := response.DateTime(*p.CreatedTime)
		item.CreatedTime = &dt
	}
	return item
}
