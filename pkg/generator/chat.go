package generator

import (
	"context"
	"encoding/json"
	"strings"
	"unicode"

	"yolcu-backend/internal/constant"
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/pkg/llm"
)

// ChatAnswerer answers roadmap chat questions. Matching is fully
// deterministic; the completion client is only consulted once a question has
// been pinned to a topic. Answer never returns an error: every failure mode
// maps to a canned Turkish reply.
type ChatAnswerer struct {
	ai  llm.Provider
	log logger.ILogger
}

func NewChatAnswerer(ai llm.Provider, log logger.ILogger) *ChatAnswerer {
	return &ChatAnswerer{ai: ai, log: log}
}

// NormalizeQuestion lowercases (Turkish-aware), trims, and strips trailing
// punctuation so "Merhaba!!" and "merhaba" compare equal.
func NormalizeQuestion(q string) string {
	return strings.Trim(strings.ToLowerSpecial(unicode.TurkishCase, strings.TrimSpace(q)), "?!.,;:")
}

// MatchTopic finds the roadmap topic the question refers to. A topic matches
// when any of its significant words (longer than two runes, "/" treated as a
// separator) appears as a substring of the normalized question. When several
// topics match, the longest topic name wins; remaining ties go to the earlier
// topic in index order.
func MatchTopic(question string, topics []string) (string, bool) {
	q := NormalizeQuestion(question)
	if q == "" {
		return "", false
	}

	best := ""
	found := false
	for _, topic := range topics {
		if !topicMatches(q, topic) {
			continue
		}
		if !found || len(topic) > len(best) {
			best = topic
			found = true
		}
	}
	return best, found
}

func topicMatches(normalizedQuestion, topic string) bool {
	lowered := strings.ToLowerSpecial(unicode.TurkishCase, topic)
	lowered = strings.ReplaceAll(lowered, "/", " ")
	for _, word := range strings.Fields(lowered) {
		if len([]rune(word)) <= 2 {
			continue
		}
		if strings.Contains(normalizedQuestion, word) {
			return true
		}
	}
	return false
}

// Answer runs the full pipeline: greeting short-circuits, empty-index guard,
// topic match, then a grounded completion. The returned string is always
// user-presentable.
func (c *ChatAnswerer) Answer(ctx context.Context, question string, topics []string, doc *entity.RoadmapDocument) string {
	normalized := NormalizeQuestion(question)

	for _, phrase := range constant.GreetingPhrases {
		if normalized == phrase {
			return constant.ChatGreetingReply
		}
	}
	for _, phrase := range constant.HowAreYouPhrases {
		if normalized == phrase {
			return constant.ChatHowAreYouReply
		}
	}

	if len(topics) == 0 {
		return constant.ChatNoTopicsReply
	}

	topic, ok := MatchTopic(question, topics)
	if !ok {
		return constant.ChatOffTopicReply
	}

	content := ""
	if doc != nil {
		if b, err := json.Marshal(doc); err == nil {
			content = string(b)
		}
	}

	prompt := RenderTemplate(constant.RoadmapChatPromptTemplate, map[string]string{
		"question":        question,
		"topic":           topic,
		"roadmap_content": content,
	})

	raw, err := c.ai.Generate(ctx, prompt)
	if err != nil {
		c.log.Error("ChatAnswerer", "completion failed", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		return RenderTemplate(constant.ChatFailureReplyTemplate, map[string]string{"topic": topic})
	}

	answer := CleanText(raw)
	if answer == "" {
		return RenderTemplate(constant.ChatFailureReplyTemplate, map[string]string{"topic": topic})
	}
	return answer
}
