package generator

import (
	"math"
	"testing"
)

func TestAnalyzeScores(t *testing.T) {
	analyzer := NewCVAnalyzer(&fakeProvider{}, nopLogger{})

	cv := "Go geliştiricisiyim. Go ile mikroservisler yazdım. Docker kullandım."
	keywords := []string{"go", "docker", "kubernetes", "postgres"}

	analysis := analyzer.Analyze(cv, keywords)

	// 2 of 4 keywords present.
	if analysis.BasicScore != 50 {
		t.Errorf("BasicScore = %v, want 50", analysis.BasicScore)
	}
	// "go" occurs twice, "docker" once.
	if analysis.AdvancedScore != 3 {
		t.Errorf("AdvancedScore = %v, want 3", analysis.AdvancedScore)
	}
	if analysis.FinalScore != 26.5 {
		t.Errorf("FinalScore = %v, want 26.5", analysis.FinalScore)
	}
	if len(analysis.FoundKeywords) != 2 || len(analysis.MissingKeywords) != 2 {
		t.Errorf("found = %v, missing = %v", analysis.FoundKeywords, analysis.MissingKeywords)
	}
}

func TestAnalyzeWeightedCap(t *testing.T) {
	analyzer := NewCVAnalyzer(&fakeProvider{}, nopLogger{})

	cv := ""
	for i := 0; i < 25; i++ {
		cv += "docker "
	}

	analysis := analyzer.Analyze(cv, []string{"docker"})
	if analysis.AdvancedScore != 10 {
		t.Errorf("AdvancedScore = %v, want cap of 10", analysis.AdvancedScore)
	}
	// basic = 100, weighted = 10 -> (100+10)/2
	if analysis.FinalScore != 55 {
		t.Errorf("FinalScore = %v, want 55", analysis.FinalScore)
	}
}

func TestAnalyzeNoKeywords(t *testing.T) {
	analyzer := NewCVAnalyzer(&fakeProvider{}, nopLogger{})

	analysis := analyzer.Analyze("herhangi bir metin", nil)
	if analysis.BasicScore != 0 || analysis.FinalScore != 0 {
		t.Errorf("scores = %v / %v, want zeros", analysis.BasicScore, analysis.FinalScore)
	}
}

func TestAnalyzeRounding(t *testing.T) {
	analyzer := NewCVAnalyzer(&fakeProvider{}, nopLogger{})

	// 1 of 3 keywords -> 33.333... must round to 33.33.
	analysis := analyzer.Analyze("sadece go biliyorum", []string{"go", "rust", "zig"})
	if math.Abs(analysis.BasicScore-33.33) > 1e-9 {
		t.Errorf("BasicScore = %v, want 33.33", analysis.BasicScore)
	}
}

func TestExtractKeywords(t *testing.T) {
	text := "Python Python Python Docker Docker ve Kubernetes için bir proje"
	got := ExtractKeywords(text, 2)

	// "ve", "için", "bir" are stopwords; frequency order python > docker.
	if len(got) != 2 {
		t.Fatalf("keywords = %v, want 2 entries", got)
	}
	if got[0] != "python" || got[1] != "docker" {
		t.Errorf("keywords = %v, want [python docker]", got)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "turkish cv",
			text: "Üç yıl boyunca bir bankada yazılım geliştirici olarak çalıştım. Eğitim: Bilgisayar Mühendisliği.",
			want: "tr",
		},
		{
			name: "english cv",
			text: "Worked with the platform team for three years. Education: Computer Science. Skills: Go and Docker.",
			want: "en",
		},
		{
			name: "empty defaults to turkish",
			text: "",
			want: "tr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("DetectLanguage = %q, want %q", got, tt.want)
			}
		})
	}
}
