package generator

import (
	"context"
	"errors"
	"testing"
)

func TestSuggestionGenerateDropsIncomplete(t *testing.T) {
	fake := &fakeProvider{response: `{
  "project_levels": [
    {
      "level_name": "Başlangıç",
      "projects": [
        {"title": "Hava Durumu CLI", "description": "Açık API'den veri çeken bir araç."},
        {"title": "", "description": "başlıksız"},
        {"title": "açıklamasız", "description": ""}
      ]
    }
  ]
}`}
	gen := NewSuggestionGenerator(fake, nopLogger{})

	set, err := gen.Generate(context.Background(), []string{"Go", "REST"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(set.ProjectLevels) != 1 {
		t.Fatalf("levels = %d, want 1", len(set.ProjectLevels))
	}
	projects := set.ProjectLevels[0].Projects
	if len(projects) != 1 || projects[0].Title != "Hava Durumu CLI" {
		t.Errorf("projects = %+v, want only the complete one", projects)
	}
}

func TestSuggestionGenerateMissingKey(t *testing.T) {
	fake := &fakeProvider{response: `{"something_else": []}`}
	gen := NewSuggestionGenerator(fake, nopLogger{})

	_, err := gen.Generate(context.Background(), []string{"Go"})
	if !errors.Is(err, ErrMalformedAIResponse) {
		t.Errorf("err = %v, want ErrMalformedAIResponse", err)
	}
}

func TestSuggestionGenerateNoJSON(t *testing.T) {
	fake := &fakeProvider{response: "kusura bakma"}
	gen := NewSuggestionGenerator(fake, nopLogger{})

	_, err := gen.Generate(context.Background(), []string{"Go"})
	if !errors.Is(err, ErrMalformedAIResponse) {
		t.Errorf("err = %v, want ErrMalformedAIResponse", err)
	}
}
