package engine

import "time"

// Report is the full analytics snapshot. The nine sections are
// independent aggregates over the same corpus; there are no
// cross-references between them.
type Report struct {
	Basic        BasicStats          `json:"basicStats"`
	TimePatterns TimePatterns        `json:"timePatterns"`
	Content      ContentAnalysis     `json:"contentAnalysis"`
	Users        UserAnalysis        `json:"userAnalysis"`
	Engagement   EngagementAnalysis  `json:"engagementAnalysis"`
	Sources      SourceAnalysis      `json:"sourceAnalysis"`
	Trends       TrendAnalysis       `json:"trendAnalysis"`
	Performance  PerformanceAnalysis `json:"performanceAnalysis"`
	Prediction   Prediction          `json:"prediction"`
	GeneratedAt  time.Time           `json:"generatedAt"`
}

// BasicStats holds corpus-wide totals.
// AverageEngagement and EngagementRate share one formula on purpose;
// they are reported separately and must not be unified.
type BasicStats struct {
	TotalPosts        int     `json:"totalPosts"`
	TotalComments     int     `json:"totalComments"`
	TotalUsers        int     `json:"totalUsers"`
	TotalReactions    int     `json:"totalReactions"`
	TotalShares       int     `json:"totalShares"`
	AverageEngagement float64 `json:"averageEngagement"`
	EngagementRate    float64 `json:"engagementRate"`
}

// TimePatterns buckets posting activity by hour, weekday, week number
// and month.
type TimePatterns struct {
	HourlyActivity  map[int]int    `json:"hourlyActivity"`
	DailyActivity   map[string]int `json:"dailyActivity"`
	WeeklyActivity  map[int]int    `json:"weeklyActivity"`
	MonthlyActivity map[string]int `json:"monthlyActivity"`
	PeakHours       []HourCount    `json:"peakHours"`
	PeakDays        []DayCount     `json:"peakDays"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// ContentAnalysis covers type classification, word cloud, hashtags,
// mentions and sentiment.
type ContentAnalysis struct {
	ContentTypes ContentTypeCounts `json:"contentTypes"`
	TotalMedia   int               `json:"totalMedia"`
	WordCloud    []WordWeight      `json:"wordCloud"`
	Hashtags     []HashtagStat     `json:"hashtags"`
	Mentions     []MentionStat     `json:"mentions"`
	Sentiment    SentimentCounts   `json:"sentiment"`
}

type ContentTypeCounts struct {
	Photo int `json:"photo"`
	Video int `json:"video"`
	Link  int `json:"link"`
	Text  int `json:"text"`
}

type WordWeight struct {
	Word   string  `json:"word"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

type HashtagStat struct {
	Tag        string `json:"tag"`
	Count      int    `json:"count"`
	Engagement int    `json:"engagement"`
}

type MentionStat struct {
	Mention string `json:"mention"`
	Count   int    `json:"count"`
	Snippet string `json:"snippet"`
}

type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Mixed    int `json:"mixed"`
	Neutral  int `json:"neutral"`
}

// UserAnalysis ranks authors by activity. The demographic, location,
// language and retention tables are fixed illustrative placeholders.
type UserAnalysis struct {
	TotalUsers     int                `json:"totalUsers"`
	TopUsers       []UserStat         `json:"topUsers"`
	UserGrowth     map[string]int     `json:"userGrowth"`
	Segments       UserSegments       `json:"segments"`
	Demographics   map[string]float64 `json:"demographics"`
	Locations      map[string]float64 `json:"locations"`
	Languages      map[string]float64 `json:"languages"`
	RetentionRates map[string]float64 `json:"retentionRates"`
}

type UserStat struct {
	UserID          string  `json:"userId"`
	Name            string  `json:"name"`
	Posts           int     `json:"posts"`
	Comments        int     `json:"comments"`
	Reactions       int     `json:"reactions"`
	TotalActivity   int     `json:"totalActivity"`
	EngagementScore int     `json:"engagementScore"`
	Influence       float64 `json:"influence"`
}

type UserSegments struct {
	HighlyActive     int `json:"highlyActive"`
	ModeratelyActive int `json:"moderatelyActive"`
	LowActivity      int `json:"lowActivity"`
	Inactive         int `json:"inactive"`
}

// EngagementAnalysis tallies reaction types, bins per-post engagement
// and collects viral posts.
type EngagementAnalysis struct {
	ReactionTypes            map[string]int  `json:"reactionTypes"`
	Distribution             map[string]int  `json:"distribution"`
	ViralContent             []ViralPost     `json:"viralContent"`
	TotalEngagements         int             `json:"totalEngagements"`
	AverageEngagementPerPost float64         `json:"averageEngagementPerPost"`
	PostsWithEngagement      int             `json:"postsWithEngagement"`
	EngagementPercentage     float64         `json:"engagementPercentage"`
	TopReactionType          string          `json:"topReactionType"`
	TotalReactionTypes       int             `json:"totalReactionTypes"`
	CommentSentiment         SentimentCounts `json:"commentSentiment"`
}

type ViralPost struct {
	PostID          string  `json:"postId"`
	Message         string  `json:"message"`
	Score           int     `json:"score"`
	TotalEngagement int     `json:"totalEngagement"`
	EngagementRate  float64 `json:"engagementRate"`
}

// SourceAnalysis groups the corpus by originating page/group.
// Overlap is declared but not computed.
type SourceAnalysis struct {
	Sources []SourceStat  `json:"sources"`
	Overlap SourceOverlap `json:"overlap"`
}

type SourceStat struct {
	Name       string         `json:"name"`
	Posts      int            `json:"posts"`
	Engagement int            `json:"engagement"`
	Growth     map[string]int `json:"growth"`
}

type SourceOverlap struct {
	SharedAuthors int     `json:"sharedAuthors"`
	OverlapRate   float64 `json:"overlapRate"`
}

// TrendAnalysis covers topic extraction, emerging hashtags and
// content-type trends.
type TrendAnalysis struct {
	TrendingTopics   []TopicTrend   `json:"trendingTopics"`
	EmergingHashtags []HashtagTrend `json:"emergingHashtags"`
	ContentTrends    []ContentTrend `json:"contentTrends"`
}

type TopicTrend struct {
	Topic    string  `json:"topic"`
	Mentions int     `json:"mentions"`
	Growth   float64 `json:"growth"`
}

type HashtagTrend struct {
	Tag       string `json:"tag"`
	Count     int    `json:"count"`
	Growth    int    `json:"growth"`
	Potential int    `json:"potential"`
}

type ContentTrend struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Growth     float64 `json:"growth"`
	Prediction int     `json:"prediction"`
}

// PerformanceAnalysis ranks posts by a weighted engagement/reach score.
// The optimization tables are fixed illustrative placeholders.
type PerformanceAnalysis struct {
	BestPerformingPosts  []PostPerformance `json:"bestPerformingPosts"`
	WorstPerformingPosts []PostPerformance `json:"worstPerformingPosts"`
	Optimization         Optimization      `json:"optimization"`
}

type PostPerformance struct {
	PostID     string   `json:"postId"`
	Message    string   `json:"message"`
	Engagement int      `json:"engagement"`
	Reach      int      `json:"reach"`
	Score      float64  `json:"score"`
	Issues     []string `json:"issues,omitempty"`
}

type Optimization struct {
	BestPostingTimes   []string `json:"bestPostingTimes"`
	BestFormats        []string `json:"bestFormats"`
	RecommendedActions []string `json:"recommendedActions"`
}

// Prediction applies a fixed compounding formula to the post count and
// otherwise carries static illustrative numbers.
type Prediction struct {
	GrowthPrediction   []PeriodForecast   `json:"growthPrediction"`
	EngagementForecast map[string]float64 `json:"engagementForecast"`
	TrendPredictions   []string           `json:"trendPredictions"`
	RiskAnalysis       map[string]string  `json:"riskAnalysis"`
}

type PeriodForecast struct {
	Period    string  `json:"period"`
	Predicted float64 `json:"predicted"`
}
