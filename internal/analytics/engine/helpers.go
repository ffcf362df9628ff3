package engine

import (
	"math"
	"time"

	"monitor-srv/internal/model"
)

// round2 rounds to 2 decimal places via round(x*100)/100. Aggregate
// values are asserted literally, so the rounding rule is fixed.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// reactionCount prefers the itemized breakdown, falls back to the
// summary total, and always adds the legacy like total on top. Posts
// normally carry one shape or the other, but when both are populated
// they are summed; callers rely on that additive behavior.
func reactionCount(p model.Post) int {
	count := 0
	if p.Reactions != nil && len(p.Reactions.Data) > 0 {
		count = len(p.Reactions.Data)
	} else {
		count = p.ReactionSummaryCount()
	}
	return count + p.LegacyLikeCount()
}

// commentCount prefers summary.total_count and falls back to the
// length of the nested data list.
func commentCount(p model.Post) int {
	if p.Comments == nil {
		return 0
	}
	if p.Comments.Summary != nil {
		return p.Comments.Summary.TotalCount
	}
	return len(p.Comments.Data)
}

// engagementTotal is reactions + comments + shares for one post.
func engagementTotal(p model.Post) int {
	return reactionCount(p) + commentCount(p) + p.ShareCount()
}

// weekNumber computes the calendar week as
// ceil((dayOfYear + weekdayOfJan1 + 1) / 7), Sunday-first weekdays.
func weekNumber(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := t.YearDay() - 1
	return (days + int(jan1.Weekday()) + 1 + 6) / 7
}

// Content types, first-match order: photo, video, link, text.
const (
	contentTypePhoto = "photo"
	contentTypeVideo = "video"
	contentTypeLink  = "link"
	contentTypeText  = "text"
)

// classifyContentType assigns exactly one type per post.
func classifyContentType(p model.Post) string {
	if p.FullPicture != "" || hasAttachment(p, "photo") {
		return contentTypePhoto
	}
	if hasAttachment(p, "video") {
		return contentTypeVideo
	}
	if hasAttachment(p, "share") {
		return contentTypeLink
	}
	return contentTypeText
}

func hasAttachment(p model.Post, attachmentType string) bool {
	for _, a := range p.Attachments {
		if a.Type == attachmentType {
			return true
		}
	}
	return false
}

// snippet returns the first n runes of s.
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
