package engine

import (
	"sort"

	"monitor-srv/internal/model"
)

const (
	wordCloudSize     = 50
	mentionSnippetLen = 100
)

// AnalyzeContent classifies post types, builds the word cloud, extracts
// hashtags and mentions, and classifies post sentiment.
func AnalyzeContent(posts []model.Post) ContentAnalysis {
	ca := ContentAnalysis{}

	wordCounts := make(map[string]int)
	var wordOrder []string

	type hashtagAcc struct {
		count      int
		engagement int
	}
	hashtags := make(map[string]*hashtagAcc)
	var hashtagOrder []string

	type mentionAcc struct {
		count   int
		snippet string
	}
	mentions := make(map[string]*mentionAcc)
	var mentionOrder []string

	for _, p := range posts {
		switch classifyContentType(p) {
		case contentTypePhoto:
			ca.ContentTypes.Photo++
			ca.TotalMedia++
		case contentTypeVideo:
			ca.ContentTypes.Video++
			ca.TotalMedia++
		case contentTypeLink:
			ca.ContentTypes.Link++
		default:
			ca.ContentTypes.Text++
		}

		for _, word := range extractWords(p.Message) {
			if _, seen := wordCounts[word]; !seen {
				wordOrder = append(wordOrder, word)
			}
			wordCounts[word]++
		}

		// hashtag engagement counts nested comments plus the summary
		// reaction total only, not the full reaction logic
		postEngagement := len(p.CommentList()) + p.ReactionSummaryCount()
		for _, tag := range hashtagRe.FindAllString(p.Message, -1) {
			acc, ok := hashtags[tag]
			if !ok {
				acc = &hashtagAcc{}
				hashtags[tag] = acc
				hashtagOrder = append(hashtagOrder, tag)
			}
			acc.count++
			acc.engagement += postEngagement
		}

		for _, mention := range mentionRe.FindAllString(p.Message, -1) {
			acc, ok := mentions[mention]
			if !ok {
				acc = &mentionAcc{}
				mentions[mention] = acc
				mentionOrder = append(mentionOrder, mention)
			}
			acc.count++
			acc.snippet = snippet(p.Message, mentionSnippetLen)
		}

		switch classifySentiment(p.Message) {
		case SentimentPositive:
			ca.Sentiment.Positive++
		case SentimentNegative:
			ca.Sentiment.Negative++
		case SentimentMixed:
			ca.Sentiment.Mixed++
		default:
			ca.Sentiment.Neutral++
		}
	}

	ca.WordCloud = buildWordCloud(wordCounts, wordOrder)

	for _, tag := range hashtagOrder {
		ca.Hashtags = append(ca.Hashtags, HashtagStat{
			Tag:        tag,
			Count:      hashtags[tag].count,
			Engagement: hashtags[tag].engagement,
		})
	}
	sort.SliceStable(ca.Hashtags, func(i, j int) bool {
		return ca.Hashtags[i].Engagement > ca.Hashtags[j].Engagement
	})

	for _, mention := range mentionOrder {
		ca.Mentions = append(ca.Mentions, MentionStat{
			Mention: mention,
			Count:   mentions[mention].count,
			Snippet: mentions[mention].snippet,
		})
	}

	return ca
}

// buildWordCloud keeps the top words by count and weights each against
// the maximum count.
func buildWordCloud(counts map[string]int, order []string) []WordWeight {
	var cloud []WordWeight
	for _, word := range order {
		cloud = append(cloud, WordWeight{Word: word, Count: counts[word]})
	}
	sort.SliceStable(cloud, func(i, j int) bool { return cloud[i].Count > cloud[j].Count })
	if len(cloud) > wordCloudSize {
		cloud = cloud[:wordCloudSize]
	}
	if len(cloud) > 0 {
		max := cloud[0].Count
		for i := range cloud {
			cloud[i].Weight = float64(cloud[i].Count) / float64(max)
		}
	}
	return cloud
}
