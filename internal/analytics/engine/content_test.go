package engine

import (
	"testing"

	"monitor-srv/internal/model"
)

func TestClassifyContentType(t *testing.T) {
	cases := []struct {
		name string
		post model.Post
		want string
	}{
		{"full picture wins", model.Post{FullPicture: "https://example.com/a.jpg"}, contentTypePhoto},
		{"photo attachment", model.Post{Attachments: []model.Attachment{{Type: "photo"}}}, contentTypePhoto},
		{"video attachment", model.Post{Attachments: []model.Attachment{{Type: "video"}}}, contentTypeVideo},
		{"share attachment", model.Post{Attachments: []model.Attachment{{Type: "share"}}}, contentTypeLink},
		{"photo beats video", model.Post{Attachments: []model.Attachment{{Type: "video"}, {Type: "photo"}}}, contentTypePhoto},
		{"video beats share", model.Post{Attachments: []model.Attachment{{Type: "share"}, {Type: "video"}}}, contentTypeVideo},
		{"nothing means text", model.Post{Message: "نص فقط"}, contentTypeText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyContentType(tc.post); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestAnalyzeContent(t *testing.T) {
	t.Run("total media counts photos and videos only", func(t *testing.T) {
		posts := []model.Post{
			{FullPicture: "x"},
			{Attachments: []model.Attachment{{Type: "video"}}},
			{Attachments: []model.Attachment{{Type: "share"}}},
			{Message: "نص"},
		}
		ca := AnalyzeContent(posts)
		if ca.TotalMedia != 2 {
			t.Errorf("TotalMedia: got %d, want 2", ca.TotalMedia)
		}
		if ca.ContentTypes.Photo != 1 || ca.ContentTypes.Video != 1 ||
			ca.ContentTypes.Link != 1 || ca.ContentTypes.Text != 1 {
			t.Errorf("ContentTypes: got %+v, want 1 each", ca.ContentTypes)
		}
	})

	t.Run("word cloud weights against max count", func(t *testing.T) {
		posts := []model.Post{
			{Message: "مرحبا مرحبا مرحبا عالم عالم سلام"},
		}
		ca := AnalyzeContent(posts)

		if len(ca.WordCloud) != 3 {
			t.Fatalf("WordCloud: got %d entries, want 3", len(ca.WordCloud))
		}
		if ca.WordCloud[0].Word != "مرحبا" || ca.WordCloud[0].Weight != 1 {
			t.Errorf("WordCloud[0]: got %+v, want مرحبا weight 1", ca.WordCloud[0])
		}
		want := float64(2) / 3
		if ca.WordCloud[1].Word != "عالم" || ca.WordCloud[1].Weight != want {
			t.Errorf("WordCloud[1]: got %+v, want عالم weight %v", ca.WordCloud[1], want)
		}
	})

	t.Run("hashtags sorted by engagement descending", func(t *testing.T) {
		posts := []model.Post{
			{
				Message:   "خبر #عاجل",
				Reactions: &model.Reactions{Summary: &model.Summary{TotalCount: 3}},
			},
			{
				Message:   "يوم #جميل",
				Reactions: &model.Reactions{Summary: &model.Summary{TotalCount: 10}},
			},
		}
		ca := AnalyzeContent(posts)
		if len(ca.Hashtags) != 2 {
			t.Fatalf("Hashtags: got %d entries, want 2", len(ca.Hashtags))
		}
		if ca.Hashtags[0].Tag != "#جميل" || ca.Hashtags[0].Engagement != 10 {
			t.Errorf("Hashtags[0]: got %+v, want #جميل engagement 10", ca.Hashtags[0])
		}
	})

	t.Run("mention keeps last-seen snippet", func(t *testing.T) {
		posts := []model.Post{
			{Message: "سؤال الى @احمد الاول"},
			{Message: "رد ثاني الى @احمد"},
		}
		ca := AnalyzeContent(posts)
		if len(ca.Mentions) != 1 {
			t.Fatalf("Mentions: got %d entries, want 1", len(ca.Mentions))
		}
		if ca.Mentions[0].Count != 2 {
			t.Errorf("Count: got %d, want 2", ca.Mentions[0].Count)
		}
		if ca.Mentions[0].Snippet != "رد ثاني الى @احمد" {
			t.Errorf("Snippet: got %q, want last message", ca.Mentions[0].Snippet)
		}
	})

	t.Run("sentiment counters", func(t *testing.T) {
		posts := []model.Post{
			{Message: "هذا رائع وممتاز"},
			{Message: "هذا سيء وفظيع"},
			{Message: "رائع لكن سيء"},
			{Message: "اليوم الثلاثاء"},
		}
		ca := AnalyzeContent(posts)
		got := ca.Sentiment
		if got.Positive != 1 || got.Negative != 1 || got.Mixed != 1 || got.Neutral != 1 {
			t.Errorf("Sentiment: got %+v, want 1 each", got)
		}
	})
}
