package constant

// Canned chat replies. The chat answerer never surfaces an error to the
// user; every terminal state maps to one of these strings.

const (
	ChatGreetingReply = "Merhaba! Roadmap konularınla ilgili sorularını yanıtlamak için buradayım. Ne öğrenmek istersin?"

	ChatHowAreYouReply = "İyiyim, teşekkürler! Sen roadmap konularından hangisini merak ediyorsun?"

	ChatNoTopicsReply = "Henüz bir roadmap konusu bulamadım. Önce bir yol haritası oluşturursan sorularını yanıtlayabilirim."

	ChatOffTopicReply = "Lütfen sadece roadmap konularına dair bir soru sorun."

	// {topic} is filled with the matched topic.
	ChatFailureReplyTemplate = "Üzgünüm, \"{topic}\" konusu hakkında şu anda cevap üretemiyorum. Lütfen daha sonra tekrar dene."
)

// GreetingPhrases short-circuit the pipeline with ChatGreetingReply; the
// completion client is never called for them.
var GreetingPhrases = []string{"merhaba", "selam", "hello", "hi", "hey"}

// HowAreYouPhrases get the second canned variant.
var HowAreYouPhrases = []string{"nasılsın", "nasilsin", "naber", "how are you"}
