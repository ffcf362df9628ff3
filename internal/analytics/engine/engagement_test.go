package engine

import (
	"testing"

	"monitor-srv/internal/model"
)

func TestAnalyzeEngagement(t *testing.T) {
	t.Run("itemized reaction tally", func(t *testing.T) {
		posts := []model.Post{{
			Reactions: &model.Reactions{Data: []model.Reaction{
				{Type: "LOVE"}, {Type: "LOVE"}, {Type: "LIKE"},
			}},
		}}
		ea := AnalyzeEngagement(posts)

		if ea.ReactionTypes["LOVE"] != 2 {
			t.Errorf("LOVE: got %d, want 2", ea.ReactionTypes["LOVE"])
		}
		if ea.ReactionTypes["LIKE"] != 1 {
			t.Errorf("LIKE: got %d, want 1", ea.ReactionTypes["LIKE"])
		}
		for _, key := range reactionTypeKeys {
			if key == "LOVE" || key == "LIKE" {
				continue
			}
			if ea.ReactionTypes[key] != 0 {
				t.Errorf("%s: got %d, want 0", key, ea.ReactionTypes[key])
			}
		}
		if ea.TotalReactionTypes != 2 {
			t.Errorf("TotalReactionTypes: got %d, want 2", ea.TotalReactionTypes)
		}
		if ea.TopReactionType != "LOVE" {
			t.Errorf("TopReactionType: got %s, want LOVE", ea.TopReactionType)
		}
	})

	t.Run("missing reaction type defaults to LIKE", func(t *testing.T) {
		posts := []model.Post{{
			Reactions: &model.Reactions{Data: []model.Reaction{{}, {Type: "WOW"}}},
		}}
		ea := AnalyzeEngagement(posts)
		if ea.ReactionTypes["LIKE"] != 1 {
			t.Errorf("LIKE: got %d, want 1", ea.ReactionTypes["LIKE"])
		}
		if ea.ReactionTypes["WOW"] != 1 {
			t.Errorf("WOW: got %d, want 1", ea.ReactionTypes["WOW"])
		}
	})

	t.Run("summary total approximated as LIKE", func(t *testing.T) {
		posts := []model.Post{{
			Reactions: &model.Reactions{Summary: &model.Summary{TotalCount: 12}},
		}}
		ea := AnalyzeEngagement(posts)
		if ea.ReactionTypes["LIKE"] != 12 {
			t.Errorf("LIKE: got %d, want 12", ea.ReactionTypes["LIKE"])
		}
	})

	t.Run("legacy likes always land on LIKE", func(t *testing.T) {
		// additive quirk carried on purpose
		posts := []model.Post{{
			Reactions: &model.Reactions{Data: []model.Reaction{{Type: "LOVE"}}},
			Likes:     &model.Likes{Summary: &model.Summary{TotalCount: 4}},
		}}
		ea := AnalyzeEngagement(posts)
		if ea.ReactionTypes["LOVE"] != 1 {
			t.Errorf("LOVE: got %d, want 1", ea.ReactionTypes["LOVE"])
		}
		if ea.ReactionTypes["LIKE"] != 4 {
			t.Errorf("LIKE: got %d, want 4", ea.ReactionTypes["LIKE"])
		}
	})
}

func TestDistributionBin(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{0, "0-5"},
		{5, "0-5"},
		{6, "6-20"},
		{20, "6-20"},
		{21, "21-50"},
		{50, "21-50"},
		{51, "51-100"},
		{100, "51-100"},
		{101, "100+"},
	}
	for _, tc := range cases {
		if got := distributionBin(tc.total); got != tc.want {
			t.Errorf("distributionBin(%d): got %s, want %s", tc.total, got, tc.want)
		}
	}
}

func TestViralContent(t *testing.T) {
	shares := func(n int) *model.Shares { return &model.Shares{Count: n} }

	t.Run("score at threshold is excluded", func(t *testing.T) {
		// 1 reaction + 2 comments = 1*1 + 2*2 = 5, not > 5
		posts := []model.Post{{
			ID:        "p1",
			Reactions: &model.Reactions{Data: []model.Reaction{{Type: "LIKE"}}},
			Comments:  &model.Comments{Data: []model.Comment{{ID: "c1"}, {ID: "c2"}}},
		}}
		ea := AnalyzeEngagement(posts)
		if len(ea.ViralContent) != 0 {
			t.Errorf("ViralContent: got %d entries, want 0", len(ea.ViralContent))
		}
	})

	t.Run("score above threshold is included", func(t *testing.T) {
		// 2 shares = 6 > 5
		posts := []model.Post{{ID: "p1", Shares: shares(2)}}
		ea := AnalyzeEngagement(posts)
		if len(ea.ViralContent) != 1 {
			t.Fatalf("ViralContent: got %d entries, want 1", len(ea.ViralContent))
		}
		if ea.ViralContent[0].Score != 6 {
			t.Errorf("Score: got %d, want 6", ea.ViralContent[0].Score)
		}
	})

	t.Run("capped at top 10 by score descending", func(t *testing.T) {
		var posts []model.Post
		for i := 0; i < 15; i++ {
			posts = append(posts, model.Post{ID: "p", Shares: shares(i + 2)})
		}
		ea := AnalyzeEngagement(posts)
		if len(ea.ViralContent) != 10 {
			t.Fatalf("ViralContent: got %d entries, want 10", len(ea.ViralContent))
		}
		for i := 1; i < len(ea.ViralContent); i++ {
			if ea.ViralContent[i].Score > ea.ViralContent[i-1].Score {
				t.Errorf("ViralContent not sorted descending at %d", i)
			}
		}
	})

	t.Run("engagement rate heuristic", func(t *testing.T) {
		// 20 shares: engagement 20, rate = 20/1000*100 = 2
		posts := []model.Post{{ID: "p1", Shares: shares(20)}}
		ea := AnalyzeEngagement(posts)
		if len(ea.ViralContent) != 1 {
			t.Fatalf("ViralContent: got %d entries, want 1", len(ea.ViralContent))
		}
		if ea.ViralContent[0].EngagementRate != 2 {
			t.Errorf("EngagementRate: got %v, want 2", ea.ViralContent[0].EngagementRate)
		}
	})
}
