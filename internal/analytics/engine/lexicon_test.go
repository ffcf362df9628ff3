package engine

import "testing"

func TestClassifySentiment(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"positive terms only", "هذا رائع وممتاز", SentimentPositive},
		{"negative terms only", "هذا سيء وفظيع", SentimentNegative},
		{"one of each", "رائع لكن سيء", SentimentMixed},
		{"no lexicon terms", "اليوم الثلاثاء", SentimentNeutral},
		{"empty message", "", SentimentNeutral},
		{"positive outweighs negative", "رائع جميل ممتاز لكن سيء", SentimentPositive},
		{"negative outweighs positive", "سيء فظيع مؤسف لكن جميل", SentimentNegative},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifySentiment(tc.message); got != tc.want {
				t.Errorf("classifySentiment(%q): got %s, want %s", tc.message, got, tc.want)
			}
		})
	}
}

func TestExtractWords(t *testing.T) {
	t.Run("strips non-arabic and short words", func(t *testing.T) {
		words := extractWords("مرحبا hello يا 123 عالم")
		want := []string{"مرحبا", "عالم"}
		if len(words) != len(want) {
			t.Fatalf("got %v, want %v", words, want)
		}
		for i := range want {
			if words[i] != want[i] {
				t.Errorf("word[%d]: got %s, want %s", i, words[i], want[i])
			}
		}
	})

	t.Run("empty message yields no words", func(t *testing.T) {
		if words := extractWords(""); len(words) != 0 {
			t.Errorf("got %v, want empty", words)
		}
	})
}

func TestMatchTopics(t *testing.T) {
	t.Run("single topic", func(t *testing.T) {
		topics := matchTopics("مباراة كرة القدم اليوم")
		found := false
		for _, topic := range topics {
			if topic == "sports" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected sports in %v", topics)
		}
	})

	t.Run("post may match multiple topics", func(t *testing.T) {
		topics := matchTopics("برمجة تطبيق لمتابعة مباراة")
		if len(topics) < 2 {
			t.Errorf("expected at least 2 topics, got %v", topics)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if topics := matchTopics("ذهبت الى هناك"); len(topics) != 0 {
			t.Errorf("expected no topics, got %v", topics)
		}
	})

	t.Run("match order is deterministic", func(t *testing.T) {
		message := "برمجة مباراة طعام سفر عائلة صلاة"
		first := matchTopics(message)
		if len(first) < 2 {
			t.Fatalf("expected several topics, got %v", first)
		}
		for run := 0; run < 50; run++ {
			topics := matchTopics(message)
			for i := range first {
				if topics[i] != first[i] {
					t.Fatalf("run %d: order diverged at %d: got %v, want %v", run, i, topics, first)
				}
			}
		}
	})
}

func TestTopicNamesCoverLexicon(t *testing.T) {
	if len(topicNames) != len(topicLexicon) {
		t.Fatalf("topicNames has %d entries, topicLexicon has %d", len(topicNames), len(topicLexicon))
	}
	seen := map[string]bool{}
	for _, name := range topicNames {
		if _, ok := topicLexicon[name]; !ok {
			t.Errorf("topicNames entry %q missing from topicLexicon", name)
		}
		if seen[name] {
			t.Errorf("topicNames entry %q duplicated", name)
		}
		seen[name] = true
	}
}
