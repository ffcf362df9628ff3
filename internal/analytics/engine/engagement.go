package engine

import (
	"sort"

	"monitor-srv/internal/model"
)

// Reaction type keys, tallied for every corpus.
var reactionTypeKeys = []string{
	"LIKE", "LOVE", "WOW", "HAHA", "SAD", "ANGRY", "CARE", "THANKFUL", "PRIDE",
}

// Engagement distribution bins.
var distributionBins = []string{"0-5", "6-20", "21-50", "51-100", "100+"}

const (
	viralScoreThreshold = 5
	viralContentSize    = 10
	viralMessageLen     = 100
)

// AnalyzeEngagement tallies reaction types, bins per-post engagement,
// collects viral posts and classifies comment sentiment.
func AnalyzeEngagement(posts []model.Post) EngagementAnalysis {
	ea := EngagementAnalysis{
		ReactionTypes: make(map[string]int, len(reactionTypeKeys)),
		Distribution:  make(map[string]int, len(distributionBins)),
	}
	for _, key := range reactionTypeKeys {
		ea.ReactionTypes[key] = 0
	}
	for _, bin := range distributionBins {
		ea.Distribution[bin] = 0
	}

	for _, p := range posts {
		tallyReactions(ea.ReactionTypes, p)

		total := engagementTotal(p)
		ea.Distribution[distributionBin(total)]++
		ea.TotalEngagements += total
		if total > 0 {
			ea.PostsWithEngagement++
		}

		score := reactionCount(p)*1 + commentCount(p)*2 + p.ShareCount()*3
		if score > viralScoreThreshold {
			ea.ViralContent = append(ea.ViralContent, ViralPost{
				PostID:          p.ID,
				Message:         snippet(p.Message, viralMessageLen),
				Score:           score,
				TotalEngagement: total,
				EngagementRate:  round2(float64(total) / 1000 * 100),
			})
		}

		for _, c := range p.CommentList() {
			switch classifySentiment(c.Message) {
			case SentimentPositive:
				ea.CommentSentiment.Positive++
			case SentimentNegative:
				ea.CommentSentiment.Negative++
			case SentimentMixed:
				ea.CommentSentiment.Mixed++
			default:
				ea.CommentSentiment.Neutral++
			}
		}
	}

	sort.SliceStable(ea.ViralContent, func(i, j int) bool {
		return ea.ViralContent[i].Score > ea.ViralContent[j].Score
	})
	if len(ea.ViralContent) > viralContentSize {
		ea.ViralContent = ea.ViralContent[:viralContentSize]
	}

	if len(posts) > 0 {
		ea.AverageEngagementPerPost = round2(float64(ea.TotalEngagements) / float64(len(posts)))
		ea.EngagementPercentage = round2(float64(ea.PostsWithEngagement) / float64(len(posts)) * 100)
	}

	for _, key := range reactionTypeKeys {
		if ea.ReactionTypes[key] > 0 {
			ea.TotalReactionTypes++
		}
		if ea.TopReactionType == "" || ea.ReactionTypes[key] > ea.ReactionTypes[ea.TopReactionType] {
			ea.TopReactionType = key
		}
	}

	return ea
}

// tallyReactions adds one post to the reaction-type tally. Itemized
// entries count by type, a bare summary total is approximated as LIKE,
// and legacy likes always land on LIKE on top of either shape.
func tallyReactions(tally map[string]int, p model.Post) {
	if p.Reactions != nil && len(p.Reactions.Data) > 0 {
		for _, r := range p.Reactions.Data {
			reactionType := r.Type
			if reactionType == "" {
				reactionType = "LIKE"
			}
			if _, known := tally[reactionType]; !known {
				reactionType = "LIKE"
			}
			tally[reactionType]++
		}
	} else if total := p.ReactionSummaryCount(); total > 0 {
		tally["LIKE"] += total
	}
	tally["LIKE"] += p.LegacyLikeCount()
}

// distributionBin maps a per-post engagement total to its histogram
// bin; 0 falls into "0-5".
func distributionBin(total int) string {
	switch {
	case total <= 5:
		return "0-5"
	case total <= 20:
		return "6-20"
	case total <= 50:
		return "21-50"
	case total <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
