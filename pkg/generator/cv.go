package generator

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"yolcu-backend/internal/constant"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/pkg/llm"
)

// ATSAnalysis is the full result of scoring a CV against a keyword set.
type ATSAnalysis struct {
	BasicScore      float64  `json:"basic_score"`
	AdvancedScore   float64  `json:"advanced_score"`
	FinalScore      float64  `json:"final_score"`
	FoundKeywords   []string `json:"found_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Language        string   `json:"language"`
}

// CVAnalyzer scores an uploaded CV for ATS (Applicant Tracking System)
// compatibility and asks the model for improvement feedback. Scoring is
// purely local; only the feedback text needs a completion.
type CVAnalyzer struct {
	ai  llm.Provider
	log logger.ILogger
}

func NewCVAnalyzer(ai llm.Provider, log logger.ILogger) *CVAnalyzer {
	return &CVAnalyzer{ai: ai, log: log}
}

// ReadCV extracts plain text from a CV upload. PDFs and plain text files are
// supported.
func ReadCV(fileName string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return readPDF(data)
	case ".txt", ".md":
		if !isTextual(data) {
			return "", ErrUnsupportedFile
		}
		return string(data), nil
	default:
		return "", ErrUnsupportedFile
	}
}

var wordRe = regexp.MustCompile(`[a-zA-ZğüşöçıİĞÜŞÖÇ]+`)

var stopwords = map[string]struct{}{
	// English
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"from": {}, "have": {}, "are": {}, "was": {}, "you": {}, "your": {},
	"not": {}, "all": {}, "can": {}, "will": {}, "has": {}, "had": {},
	// Turkish
	"ve": {}, "ile": {}, "bir": {}, "bu": {}, "için": {}, "gibi": {},
	"olarak": {}, "daha": {}, "çok": {}, "ama": {}, "veya": {}, "ben": {},
	"sen": {}, "biz": {}, "her": {}, "olan": {}, "son": {},
}

// ExtractKeywords pulls the most frequent significant words out of a job
// description or CV. Words of three or more letters, stopwords excluded,
// ranked by frequency with alphabetical order breaking ties.
func ExtractKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	for _, word := range wordRe.FindAllString(strings.ToLowerSpecial(unicode.TurkishCase, text), -1) {
		if len([]rune(word)) < 3 {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		counts[word]++
	}

	keywords := make([]string, 0, len(counts))
	for word := range counts {
		keywords = append(keywords, word)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

// Analyze runs both scoring passes over the CV text.
//
// Basic: percentage of keywords present at all. Advanced: each keyword earns
// its occurrence count capped at 10 points. The final score averages the two
// components; all three round to two decimals.
func (a *CVAnalyzer) Analyze(cvText string, keywords []string) ATSAnalysis {
	lowered := strings.ToLowerSpecial(unicode.TurkishCase, cvText)

	found := make([]string, 0, len(keywords))
	missing := make([]string, 0)
	var weighted float64
	for _, kw := range keywords {
		count := strings.Count(lowered, strings.ToLowerSpecial(unicode.TurkishCase, kw))
		if count == 0 {
			missing = append(missing, kw)
			continue
		}
		found = append(found, kw)
		weighted += math.Min(10, float64(count))
	}

	basic := 0.0
	if len(keywords) > 0 {
		basic = round2(100 * float64(len(found)) / float64(len(keywords)))
	}
	advanced := round2(weighted)
	final := round2((basic + weighted) / 2)

	return ATSAnalysis{
		BasicScore:      basic,
		AdvancedScore:   advanced,
		FinalScore:      final,
		FoundKeywords:   found,
		MissingKeywords: missing,
		Language:        DetectLanguage(cvText),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var turkishMarkers = map[string]struct{}{
	"ve": {}, "bir": {}, "için": {}, "ile": {}, "olarak": {}, "bu": {},
	"çalıştım": {}, "deneyim": {}, "eğitim": {}, "üniversite": {},
}

var englishMarkers = map[string]struct{}{
	"the": {}, "and": {}, "with": {}, "for": {}, "experience": {},
	"education": {}, "university": {}, "worked": {}, "skills": {},
}

// DetectLanguage guesses tr or en from marker-word counts. Defaults to tr on
// a tie since the product audience is Turkish.
func DetectLanguage(text string) string {
	tr, en := 0, 0
	for _, word := range strings.Fields(strings.ToLowerSpecial(unicode.TurkishCase, text)) {
		word = strings.Trim(word, ".,;:!?")
		if _, ok := turkishMarkers[word]; ok {
			tr++
		}
		if _, ok := englishMarkers[word]; ok {
			en++
		}
	}
	if en > tr {
		return "en"
	}
	return "tr"
}

// Feedback asks the model for ATS-focused improvement suggestions grounded in
// the missing keywords. Returns a cleaned single paragraph.
func (a *CVAnalyzer) Feedback(ctx context.Context, cvText string, analysis ATSAnalysis) (string, error) {
	issues := ""
	if len(analysis.MissingKeywords) > 0 {
		issues = "Missing keywords to address: " + strings.Join(analysis.MissingKeywords, ", ")
	}

	prompt := RenderTemplate(constant.CVFeedbackPromptTemplate, map[string]string{
		"issues_context": issues,
		"cv_text":        cvText,
	})

	raw, err := a.ai.Generate(ctx, prompt, llm.WithTemperature(0.5))
	if err != nil {
		return "", fmt.Errorf("cv feedback completion: %w", err)
	}
	return CleanText(raw), nil
}

// OptimizationTips returns static, always-applicable ATS advice appended to
// every analysis result.
func OptimizationTips() []string {
	return []string{
		"Basit ve tek sütunlu bir düzen kullanın; tablolar ve grafikler ATS tarafından okunamayabilir.",
		"Bölüm başlıklarını standart tutun: Deneyim, Eğitim, Yetenekler.",
		"İş ilanındaki anahtar kelimeleri doğal bir şekilde metne yerleştirin.",
		"Uzun 'Hakkımda' yazısı yerine kısa bir özet bölümü tercih edin.",
		"CV'nizi hem PDF hem de düz metin olarak kontrol edin.",
	}
}
