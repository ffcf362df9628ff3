package engine

import (
	"testing"
	"time"

	"monitor-srv/internal/model"
)

func timePtr(t time.Time) *time.Time { return &t }

func postWithReactions(id, authorID string, reactions int) model.Post {
	data := make([]model.Reaction, reactions)
	for i := range data {
		data[i] = model.Reaction{Type: "LIKE"}
	}
	return model.Post{
		ID:        id,
		From:      &model.Author{ID: authorID},
		Reactions: &model.Reactions{Data: data},
	}
}

func TestAnalyze(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty corpus degrades to zero-valued output", func(t *testing.T) {
		report := Analyze(nil, now)

		if report.Basic.TotalPosts != 0 {
			t.Errorf("TotalPosts: got %d, want 0", report.Basic.TotalPosts)
		}
		if report.Basic.AverageEngagement != 0 {
			t.Errorf("AverageEngagement: got %v, want 0", report.Basic.AverageEngagement)
		}
		if len(report.TimePatterns.PeakHours) != 0 {
			t.Errorf("PeakHours: got %d entries, want 0", len(report.TimePatterns.PeakHours))
		}
		if len(report.Users.TopUsers) != 0 {
			t.Errorf("TopUsers: got %d entries, want 0", len(report.Users.TopUsers))
		}
		if len(report.Engagement.ViralContent) != 0 {
			t.Errorf("ViralContent: got %d entries, want 0", len(report.Engagement.ViralContent))
		}
		for _, key := range reactionTypeKeys {
			if report.Engagement.ReactionTypes[key] != 0 {
				t.Errorf("ReactionTypes[%s]: got %d, want 0", key, report.Engagement.ReactionTypes[key])
			}
		}
	})

	t.Run("end-to-end scenario", func(t *testing.T) {
		// 3 posts by user A, 2 reactions each, no comments/shares;
		// 1 post by user B, 5 comments, no reactions
		comments := make([]model.Comment, 5)
		for i := range comments {
			comments[i] = model.Comment{ID: "c", Message: "تعليق"}
		}
		posts := []model.Post{
			postWithReactions("p1", "A", 2),
			postWithReactions("p2", "A", 2),
			postWithReactions("p3", "A", 2),
			{
				ID:       "p4",
				From:     &model.Author{ID: "B"},
				Comments: &model.Comments{Data: comments},
			},
		}

		report := Analyze(posts, now)

		if report.Basic.TotalPosts != 4 {
			t.Errorf("TotalPosts: got %d, want 4", report.Basic.TotalPosts)
		}
		if report.Basic.TotalUsers != 2 {
			t.Errorf("TotalUsers: got %d, want 2", report.Basic.TotalUsers)
		}
		if report.Basic.TotalReactions != 6 {
			t.Errorf("TotalReactions: got %d, want 6", report.Basic.TotalReactions)
		}
		if report.Basic.TotalComments != 5 {
			t.Errorf("TotalComments: got %d, want 5", report.Basic.TotalComments)
		}
		if report.Basic.AverageEngagement != 2.75 {
			t.Errorf("AverageEngagement: got %v, want 2.75", report.Basic.AverageEngagement)
		}
		if report.Basic.EngagementRate != report.Basic.AverageEngagement {
			t.Errorf("EngagementRate %v != AverageEngagement %v",
				report.Basic.EngagementRate, report.Basic.AverageEngagement)
		}
	})

	t.Run("sparse posts never panic", func(t *testing.T) {
		posts := []model.Post{
			{},
			{ID: "only-id"},
			{Message: "نص بدون اي حقول اخرى"},
			{From: &model.Author{}},
			{Comments: &model.Comments{}},
			{Reactions: &model.Reactions{}},
		}
		report := Analyze(posts, now)
		if report.Basic.TotalPosts != len(posts) {
			t.Errorf("TotalPosts: got %d, want %d", report.Basic.TotalPosts, len(posts))
		}
		if report.Basic.TotalUsers != 0 {
			t.Errorf("TotalUsers: got %d, want 0 (no non-empty author ids)", report.Basic.TotalUsers)
		}
	})
}

func TestBasic(t *testing.T) {
	t.Run("distinct non-empty author ids", func(t *testing.T) {
		posts := []model.Post{
			{From: &model.Author{ID: "A"}},
			{From: &model.Author{ID: "A"}},
			{From: &model.Author{ID: "B"}},
			{From: &model.Author{ID: ""}},
			{},
		}
		stats := Basic(posts)
		if stats.TotalUsers != 2 {
			t.Errorf("TotalUsers: got %d, want 2", stats.TotalUsers)
		}
	})

	t.Run("legacy likes are added on top of reactions", func(t *testing.T) {
		// Known additive quirk: a post carrying both an itemized
		// breakdown and legacy likes counts both.
		posts := []model.Post{{
			Reactions: &model.Reactions{Data: []model.Reaction{{Type: "LOVE"}, {Type: "LIKE"}}},
			Likes:     &model.Likes{Summary: &model.Summary{TotalCount: 3}},
		}}
		stats := Basic(posts)
		if stats.TotalReactions != 5 {
			t.Errorf("TotalReactions: got %d, want 5 (2 itemized + 3 legacy)", stats.TotalReactions)
		}
	})

	t.Run("summary fallback when no itemized data", func(t *testing.T) {
		posts := []model.Post{{
			Reactions: &model.Reactions{Summary: &model.Summary{TotalCount: 7}},
		}}
		stats := Basic(posts)
		if stats.TotalReactions != 7 {
			t.Errorf("TotalReactions: got %d, want 7", stats.TotalReactions)
		}
	})

	t.Run("comment count prefers summary over data length", func(t *testing.T) {
		posts := []model.Post{{
			Comments: &model.Comments{
				Data:    []model.Comment{{ID: "c1"}},
				Summary: &model.Summary{TotalCount: 40},
			},
		}}
		stats := Basic(posts)
		if stats.TotalComments != 40 {
			t.Errorf("TotalComments: got %d, want 40", stats.TotalComments)
		}
	})
}
