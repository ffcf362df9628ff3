package engine

import (
	"sort"
	"time"

	"monitor-srv/internal/model"
)

const (
	trendingTopicsSize   = 10
	emergingHashtagsSize = 5
	topicGrowthWindow    = 7 * 24 * time.Hour
	contentTrendWindow   = 30 * 24 * time.Hour
)

// AnalyzeTrends extracts trending topics against a 7-day growth
// window, scores emerging hashtags and reports content-type trends
// against a 30-day window. now anchors both windows.
func AnalyzeTrends(posts []model.Post, now time.Time) TrendAnalysis {
	ta := TrendAnalysis{}

	type topicAcc struct {
		mentions int
		recent   int
	}
	topics := make(map[string]*topicAcc)
	var topicOrder []string

	hashtagCounts := make(map[string]int)
	var hashtagOrder []string

	typeCounts := make(map[string]int)
	recentTypeCounts := make(map[string]int)

	for _, p := range posts {
		recent7 := p.CreatedTime != nil && now.Sub(*p.CreatedTime) <= topicGrowthWindow
		for _, topic := range matchTopics(p.Message) {
			acc, ok := topics[topic]
			if !ok {
				acc = &topicAcc{}
				topics[topic] = acc
				topicOrder = append(topicOrder, topic)
			}
			acc.mentions++
			if recent7 {
				acc.recent++
			}
		}

		for _, tag := range hashtagRe.FindAllString(p.Message, -1) {
			if _, seen := hashtagCounts[tag]; !seen {
				hashtagOrder = append(hashtagOrder, tag)
			}
			hashtagCounts[tag]++
		}

		contentType := classifyContentType(p)
		typeCounts[contentType]++
		if p.CreatedTime != nil && now.Sub(*p.CreatedTime) <= contentTrendWindow {
			recentTypeCounts[contentType]++
		}
	}

	for _, topic := range topicOrder {
		acc := topics[topic]
		growth := float64(acc.recent) / float64(acc.mentions) * 100
		if growth > 100 {
			growth = 100
		}
		ta.TrendingTopics = append(ta.TrendingTopics, TopicTrend{
			Topic:    topic,
			Mentions: acc.mentions,
			Growth:   round2(growth),
		})
	}
	sort.SliceStable(ta.TrendingTopics, func(i, j int) bool {
		return ta.TrendingTopics[i].Mentions > ta.TrendingTopics[j].Mentions
	})
	if len(ta.TrendingTopics) > trendingTopicsSize {
		ta.TrendingTopics = ta.TrendingTopics[:trendingTopicsSize]
	}

	for _, tag := range hashtagOrder {
		count := hashtagCounts[tag]
		growth := 10
		if count > 1 {
			growth = count * 20
		}
		potential := count * 15
		if potential > 100 {
			potential = 100
		}
		ta.EmergingHashtags = append(ta.EmergingHashtags, HashtagTrend{
			Tag:       tag,
			Count:     count,
			Growth:    growth,
			Potential: potential,
		})
	}
	sort.SliceStable(ta.EmergingHashtags, func(i, j int) bool {
		return ta.EmergingHashtags[i].Growth > ta.EmergingHashtags[j].Growth
	})
	if len(ta.EmergingHashtags) > emergingHashtagsSize {
		ta.EmergingHashtags = ta.EmergingHashtags[:emergingHashtagsSize]
	}

	for _, contentType := range []string{contentTypePhoto, contentTypeVideo, contentTypeText, contentTypeLink} {
		growth := 0.0
		if typeCounts[contentType] > 0 {
			growth = round2(float64(recentTypeCounts[contentType]) / float64(typeCounts[contentType]) * 100)
		}
		ta.ContentTrends = append(ta.ContentTrends, ContentTrend{
			Type:       contentType,
			Count:      typeCounts[contentType],
			Growth:     growth,
			Prediction: contentTrendPredictions[contentType],
		})
	}

	return ta
}
