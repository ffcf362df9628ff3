package engine

import (
	"regexp"
	"strings"
)

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentMixed    = "mixed"
	SentimentNeutral  = "neutral"
)

var positiveTerms = []string{
	"رائع", "جميل", "ممتاز", "عظيم", "مذهل", "أحب", "سعيد", "شكرا",
}

var negativeTerms = []string{
	"سيء", "قبيح", "فظيع", "مؤسف", "حزين", "أكره", "غاضب", "مشكلة",
}

// classifySentiment tokenizes on whitespace and counts substring
// matches against the two lexicons. Rule order: positive>negative
// wins, then negative>positive, then both present means mixed,
// otherwise neutral.
func classifySentiment(message string) string {
	positive, negative := 0, 0
	for _, token := range strings.Fields(message) {
		for _, term := range positiveTerms {
			if strings.Contains(token, term) {
				positive++
			}
		}
		for _, term := range negativeTerms {
			if strings.Contains(token, term) {
				negative++
			}
		}
	}

	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	case positive > 0 && negative > 0:
		return SentimentMixed
	default:
		return SentimentNeutral
	}
}

var (
	nonArabicRe = regexp.MustCompile(`[^\x{0600}-\x{06FF}\s]`)
	hashtagRe   = regexp.MustCompile(`#[\x{0600}-\x{06FF}\w]+`)
	mentionRe   = regexp.MustCompile(`@[\x{0600}-\x{06FF}\w]+`)
)

// extractWords lowercases the message, strips everything outside the
// Arabic block and whitespace, and returns the words longer than 2
// runes.
func extractWords(message string) []string {
	cleaned := nonArabicRe.ReplaceAllString(strings.ToLower(message), "")
	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len([]rune(w)) > 2 {
			words = append(words, w)
		}
	}
	return words
}

// topicLexicon maps each topic bucket to its Arabic keyword triggers.
// A post may match several topics.
var topicLexicon = map[string][]string{
	"technology":    {"تقنية", "تكنولوجيا", "كمبيوتر", "حاسوب", "هاتف", "جوال", "انترنت", "برمجة", "تطبيق", "ذكاء"},
	"sports":        {"رياضة", "كرة", "مباراة", "فريق", "لاعب", "هدف", "بطولة", "دوري", "ملعب", "تدريب"},
	"food":          {"طعام", "اكل", "طبخ", "وصفة", "مطعم", "لذيذ", "غداء", "عشاء", "فطور", "حلويات"},
	"travel":        {"سفر", "سياحة", "رحلة", "طيران", "فندق", "شاطئ", "عطلة", "مغامرة", "تذكرة", "وجهة"},
	"education":     {"تعليم", "مدرسة", "جامعة", "دراسة", "طالب", "معلم", "امتحان", "شهادة", "تعلم", "كتاب"},
	"health":        {"صحة", "طبيب", "مستشفى", "علاج", "دواء", "مرض", "لياقة", "تغذية", "نفسية", "وقاية"},
	"business":      {"عمل", "شركة", "مشروع", "استثمار", "تجارة", "سوق", "ربح", "اقتصاد", "وظيفة", "تسويق"},
	"entertainment": {"ترفيه", "فيلم", "مسلسل", "سينما", "حفلة", "لعبة", "مسرح", "كوميديا", "برنامج", "مشاهدة"},
	"news":          {"خبر", "اخبار", "عاجل", "حدث", "تقرير", "صحافة", "اعلام", "بيان", "مؤتمر", "تصريح"},
	"fashion":       {"موضة", "ازياء", "ملابس", "تصميم", "اناقة", "جمال", "مكياج", "فستان", "حذاء", "ستايل"},
	"art":           {"فن", "رسم", "لوحة", "معرض", "فنان", "نحت", "تصوير", "ابداع", "خط", "الوان"},
	"music":         {"موسيقى", "اغنية", "مطرب", "لحن", "حفل", "عزف", "غناء", "البوم", "ايقاع", "طرب"},
	"family":        {"عائلة", "اسرة", "اطفال", "ام", "اب", "زواج", "اخ", "اخت", "بيت", "تربية"},
	"love":          {"حب", "حبيب", "عشق", "رومانسية", "قلب", "غرام", "مشاعر", "شوق", "وفاء", "خطوبة"},
	"religion":      {"دين", "صلاة", "مسجد", "قران", "دعاء", "صيام", "رمضان", "حج", "عيد", "ايمان"},
}

// topicNames fixes the iteration order over topicLexicon so repeated
// runs over the same corpus match topics in the same order.
var topicNames = []string{
	"technology", "sports", "food", "travel", "education",
	"health", "business", "entertainment", "news", "fashion",
	"art", "music", "family", "love", "religion",
}

// matchTopics returns the topic buckets triggered by the message.
func matchTopics(message string) []string {
	var topics []string
	for _, topic := range topicNames {
		for _, keyword := range topicLexicon[topic] {
			if strings.Contains(message, keyword) {
				topics = append(topics, topic)
				break
			}
		}
	}
	return topics
}
