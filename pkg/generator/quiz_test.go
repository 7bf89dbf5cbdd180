package generator

import (
	"context"
	"errors"
	"testing"
)

const validQuizJSON = `{
  "quizTitle": "Konu Değerlendirme Sınavı",
  "levels": [
    {
      "level": 1,
      "levelTitle": "Temel Kavramlar",
      "questions": [
        {
          "question": "Bir dilim (slice) nedir?",
          "options": ["Dizi görünümü", "Harita", "Kanal", "Yapı"],
          "answer": "Dizi görünümü"
        }
      ]
    }
  ]
}`

func TestQuizGenerate(t *testing.T) {
	fake := &fakeProvider{response: "```json\n" + validQuizJSON + "\n```"}
	gen := NewQuizGenerator(fake, nopLogger{})

	payload, err := gen.Generate(context.Background(), []string{"Go"}, []string{"Algoritmalar"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if payload.QuizTitle != "Konu Değerlendirme Sınavı" {
		t.Errorf("QuizTitle = %q", payload.QuizTitle)
	}
	if len(payload.Levels) != 1 || len(payload.Levels[0].Questions) != 1 {
		t.Fatalf("unexpected payload shape: %+v", payload)
	}
	q := payload.Levels[0].Questions[0]
	if len(q.Options) != 4 || q.Answer == "" {
		t.Errorf("question not validated: %+v", q)
	}
}

func TestQuizGenerateEmptyResponse(t *testing.T) {
	fake := &fakeProvider{response: "   "}
	gen := NewQuizGenerator(fake, nopLogger{})

	_, err := gen.Generate(context.Background(), []string{"Go"}, nil)
	if !errors.Is(err, ErrEmptyAIResponse) {
		t.Errorf("err = %v, want ErrEmptyAIResponse", err)
	}
}

func TestQuizGenerateMalformed(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "prose only", response: "Üzgünüm, quiz oluşturamadım."},
		{name: "no levels", response: `{"quizTitle": "X", "levels": []}`},
		{
			name:     "wrong option count",
			response: `{"levels": [{"questions": [{"question": "q", "options": ["a", "b"], "answer": "a"}]}]}`,
		},
		{
			name:     "empty answer",
			response: `{"levels": [{"questions": [{"question": "q", "options": ["a", "b", "c", "d"], "answer": ""}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProvider{response: tt.response}
			gen := NewQuizGenerator(fake, nopLogger{})

			_, err := gen.Generate(context.Background(), []string{"Go"}, nil)
			if !errors.Is(err, ErrMalformedAIResponse) {
				t.Errorf("err = %v, want ErrMalformedAIResponse", err)
			}
		})
	}
}
