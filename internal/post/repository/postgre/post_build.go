package postgre

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"monitor-srv/internal/model"
	"monitor-srv/internal/post/repository"

	"github.com/lib/pq"
)

// buildPostFilter renders the WHERE clause and args for list/count.
func buildPostFilter(opt repository.ListPostsOptions) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if len(opt.SourceIDs) > 0 {
		args = append(args, pq.Array(opt.SourceIDs))
		conds = append(conds, fmt.Sprintf("source_id = ANY($%d)", len(args)))
	}
	if opt.DateFrom != nil {
		args = append(args, *opt.DateFrom)
		conds = append(conds, fmt.Sprintf("created_time >= $%d", len(args)))
	}
	if opt.DateTo != nil {
		args = append(args, *opt.DateTo)
		conds = append(conds, fmt.Sprintf("created_time <= $%d", len(args)))
	}
	if opt.AuthorID != "" {
		args = append(args, opt.AuthorID)
		conds = append(conds, fmt.Sprintf("author_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type postRow struct {
	id          string
	message     string
	createdTime sql.NullTime
	authorID    string
	authorName  string
	fullPicture string
	attachments interface{}
	reactions   interface{}
	likes       interface{}
	shares      interface{}
	comments    interface{}
	sourceID    string
	sourceName  string
	sourceType  string
}

// buildPostRow flattens a model.Post into insertable columns; nested
// Graph shapes go to JSONB.
func buildPostRow(p model.Post, opt repository.UpsertPostsOptions) (postRow, error) {
	row := postRow{
		id:          p.ID,
		message:     p.Message,
		authorID:    p.AuthorID(),
		authorName:  p.AuthorName(),
		fullPicture: p.FullPicture,
		sourceID:    opt.SourceID,
		sourceName:  opt.SourceName,
		sourceType:  opt.SourceType,
	}
	if p.SourceID != "" {
		row.sourceID = p.SourceID
		row.sourceName = p.SourceName
		row.sourceType = p.SourceType
	}
	if p.CreatedTime != nil {
		row.createdTime = sql.NullTime{Time: *p.CreatedTime, Valid: true}
	}

	var err error
	if row.attachments, err = nullableJSON(p.Attachments); err != nil {
		return row, err
	}
	if row.reactions, err = nullableJSON(p.Reactions); err != nil {
		return row, err
	}
	if row.likes, err = nullableJSON(p.Likes); err != nil {
		return row, err
	}
	if row.shares, err = nullableJSON(p.Shares); err != nil {
		return row, err
	}
	if row.comments, err = nullableJSON(p.Comments); err != nil {
		return row, err
	}

	return row, nil
}

func nullableJSON(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *model.Reactions:
		if t == nil {
			return nil, nil
		}
	case *model.Likes:
		if t == nil {
			return nil, nil
		}
	case *model.Shares:
		if t == nil {
			return nil, nil
		}
	case *model.Comments:
		if t == nil {
			return nil, nil
		}
	case []model.Attachment:
		if len(t) == 0 {
			return nil, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return data, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPost hydrates one post row, unmarshalling the JSONB shapes.
func scanPost(row rowScanner) (model.Post, error) {
	var (
		p           model.Post
		createdTime sql.NullTime
		authorID    sql.NullString
		authorName  sql.NullString
		message     sql.NullString
		fullPicture sql.NullString
		attachments []byte
		reactions   []byte
		likes       []byte
		shares      []byte
		comments    []byte
		sourceName  sql.NullString
		sourceType  sql.NullString
	)

	if err := row.Scan(
		&p.ID, &message, &createdTime, &authorID, &authorName, &fullPicture,
		&attachments, &reactions, &likes, &shares, &comments,
		&p.SourceID, &sourceName, &sourceType,
	); err != nil {
		return p, err
	}

	p.Message = message.String
	p.FullPicture = fullPicture.String
	p.SourceName = sourceName.String
	p.SourceType = sourceType.String
	if createdTime.Valid {
		t := createdTime.Time
		p.CreatedTime = &t
	}
	if authorID.String != "" || authorName.String != "" {
		p.From = &model.Author{ID: authorID.String, Name: authorName.String}
	}

	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &p.Attachments); err != nil {
			return p, err
		}
	}
	if len(reactions) > 0 {
		if err := json.Unmarshal(reactions, &p.Reactions); err != nil {
			return p, err
		}
	}
	if len(likes) > 0 {
		if err := json.Unmarshal(likes, &p.Likes); err != nil {
			return p, err
		}
	}
	if len(shares) > 0 {
		if err := json.Unmarshal(shares, &p.Shares); err != nil {
			return p, err
		}
	}
	if len(comments) > 0 {
		if err := json.Unmarshal(comments, &p.Comments); err != nil {
			return p, err
		}
	}

	return p, nil
}
