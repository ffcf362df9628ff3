package engine

import "monitor-srv/internal/model"

// Basic computes corpus-wide totals.
func Basic(posts []model.Post) BasicStats {
	stats := BasicStats{TotalPosts: len(posts)}

	authors := make(map[string]struct{})
	for _, p := range posts {
		if id := p.AuthorID(); id != "" {
			authors[id] = struct{}{}
		}
		stats.TotalComments += commentCount(p)
		stats.TotalReactions += reactionCount(p)
		stats.TotalShares += p.ShareCount()
	}
	stats.TotalUsers = len(authors)

	if stats.TotalPosts > 0 {
		perPost := float64(stats.TotalComments+stats.TotalReactions+stats.TotalShares) / float64(stats.TotalPosts)
		stats.AverageEngagement = round2(perPost)
		stats.EngagementRate = round2(perPost)
	}

	return stats
}
