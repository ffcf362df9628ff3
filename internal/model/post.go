package model

import "time"

// Post is one record of the analyzed corpus, shaped after the Graph API
// post object as the collector delivers it.
type Post struct {
	ID          string       `json:"id"`
	Message     string       `json:"message,omitempty"`
	CreatedTime *time.Time   `json:"created_time,omitempty"`
	From        *Author      `json:"from,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	FullPicture string       `json:"full_picture,omitempty"`
	Reactions   *Reactions   `json:"reactions,omitempty"`
	Likes       *Likes       `json:"likes,omitempty"`
	Shares      *Shares      `json:"shares,omitempty"`
	Comments    *Comments    `json:"comments,omitempty"`

	// Attached by the ingestion layer, not by the Graph API.
	SourceID   string `json:"source_id,omitempty"`
	SourceName string `json:"source_name,omitempty"`
	SourceType string `json:"source_type,omitempty"`
}

// Author identifies the post or comment author.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Attachment is a typed media attachment.
type Attachment struct {
	Type string `json:"type"` // photo | video | share | other
	URL  string `json:"url,omitempty"`
}

// Reaction is one entry of an itemized reaction breakdown.
type Reaction struct {
	Type string `json:"type"` // LIKE | LOVE | WOW | HAHA | SAD | ANGRY | CARE | THANKFUL | PRIDE
}

// Summary is the count-only fallback shape the Graph API returns when a
// field is fetched with summary(true).
type Summary struct {
	TotalCount int `json:"total_count"`
}

// Reactions carries either an itemized breakdown, a summary total, or both.
type Reactions struct {
	Data    []Reaction `json:"data,omitempty"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Likes is the legacy like field kept for posts fetched through older
// API versions.
type Likes struct {
	Summary *Summary `json:"summary,omitempty"`
}

// Shares carries the share counter.
type Shares struct {
	Count int `json:"count"`
}

// Comments carries the comment list plus the summary total.
type Comments struct {
	Data    []Comment `json:"data,omitempty"`
	Summary *Summary  `json:"summary,omitempty"`
}

// Comment is one comment nested under a post.
type Comment struct {
	ID          string     `json:"id"`
	Message     string     `json:"message,omitempty"`
	CreatedTime *time.Time `json:"created_time,omitempty"`
	From        *Author    `json:"from,omitempty"`
	LikeCount   int        `json:"like_count"`
}

// AuthorID returns the author id or "" when the author is absent.
func (p Post) AuthorID() string {
	if p.From == nil {
		return ""
	}
	return p.From.ID
}

// AuthorName returns the author display name or "" when absent.
func (p Post) AuthorName() string {
	if p.From == nil {
		return ""
	}
	return p.From.Name
}

// CommentList returns the nested comment records, never nil.
func (p Post) CommentList() []Comment {
	if p.Comments == nil {
		return nil
	}
	return p.Comments.Data
}

// ShareCount returns the share counter or 0 when absent.
func (p Post) ShareCount() int {
	if p.Shares == nil {
		return 0
	}
	return p.Shares.Count
}

// ReactionSummaryCount returns reactions.summary.total_count or 0.
func (p Post) ReactionSummaryCount() int {
	if p.Reactions == nil || p.Reactions.Summary == nil {
		return 0
	}
	return p.Reactions.Summary.TotalCount
}

// LegacyLikeCount returns likes.summary.total_count or 0.
func (p Post) LegacyLikeCount() int {
	if p.Likes == nil || p.Likes.Summary == nil {
		return 0
	}
	return p.Likes.Summary.TotalCount
}
