package generator

import (
	"context"
	"errors"
	"testing"

	"yolcu-backend/internal/constant"
	"yolcu-backend/pkg/llm"
)

// fakeProvider counts completion calls and returns a scripted response.
type fakeProvider struct {
	calls    int
	response string
	err      error
}

func (f *fakeProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestMatchTopic(t *testing.T) {
	topics := []string{"Go", "Veri Yapıları", "REST API Tasarımı", "API"}

	tests := []struct {
		name      string
		question  string
		wantTopic string
		wantOK    bool
	}{
		{
			name:      "direct word hit",
			question:  "Veri yapıları nedir?",
			wantTopic: "Veri Yapıları",
			wantOK:    true,
		},
		{
			name:      "case insensitive",
			question:  "REST api tasarımı zor mu",
			wantTopic: "REST API Tasarımı",
			wantOK:    true,
		},
		{
			name:      "longest topic wins on multiple matches",
			question:  "api tasarımı hakkında bilgi",
			wantTopic: "REST API Tasarımı",
			wantOK:    true,
		},
		{
			name:     "short words never match",
			question: "go nedir", // "Go" is only two runes
			wantOK:   false,
		},
		{
			name:     "unrelated question",
			question: "Bugün hava nasıl?",
			wantOK:   false,
		},
		{
			name:     "empty question",
			question: "   ",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, ok := MatchTopic(tt.question, topics)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && topic != tt.wantTopic {
				t.Errorf("topic = %q, want %q", topic, tt.wantTopic)
			}
		})
	}
}

func TestMatchTopicSlashSeparator(t *testing.T) {
	topics := []string{"HTML/CSS"}
	topic, ok := MatchTopic("css öğrenmek istiyorum", topics)
	if !ok || topic != "HTML/CSS" {
		t.Errorf("MatchTopic = (%q, %v), want (HTML/CSS, true)", topic, ok)
	}
}

func TestAnswerGreetingSkipsCompletion(t *testing.T) {
	fake := &fakeProvider{response: "asla kullanılmamalı"}
	answerer := NewChatAnswerer(fake, nopLogger{})

	for _, q := range []string{"Merhaba", "merhaba!!", "  SELAM  ", "nasılsın?"} {
		got := answerer.Answer(context.Background(), q, []string{"Go Dili"}, nil)
		if got != constant.ChatGreetingReply && got != constant.ChatHowAreYouReply {
			t.Errorf("Answer(%q) = %q, want a canned greeting reply", q, got)
		}
	}
	if fake.calls != 0 {
		t.Errorf("completion called %d times for greetings, want 0", fake.calls)
	}
}

func TestAnswerNoTopics(t *testing.T) {
	fake := &fakeProvider{}
	answerer := NewChatAnswerer(fake, nopLogger{})

	got := answerer.Answer(context.Background(), "Veri yapıları nedir?", nil, nil)
	if got != constant.ChatNoTopicsReply {
		t.Errorf("Answer = %q, want ChatNoTopicsReply", got)
	}
	if fake.calls != 0 {
		t.Errorf("completion called %d times without topics, want 0", fake.calls)
	}
}

func TestAnswerOffTopic(t *testing.T) {
	fake := &fakeProvider{}
	answerer := NewChatAnswerer(fake, nopLogger{})

	got := answerer.Answer(context.Background(), "Bugün yemekte ne var?", []string{"Veri Yapıları"}, nil)
	if got != constant.ChatOffTopicReply {
		t.Errorf("Answer = %q, want ChatOffTopicReply", got)
	}
	if fake.calls != 0 {
		t.Errorf("completion called %d times off-topic, want 0", fake.calls)
	}
}

func TestAnswerMatchedTopic(t *testing.T) {
	fake := &fakeProvider{response: "Veri yapıları,\n**verileri** düzenleme biçimleridir."}
	answerer := NewChatAnswerer(fake, nopLogger{})

	got := answerer.Answer(context.Background(), "Veri yapıları nedir?", []string{"Veri Yapıları"}, sampleDoc())
	want := "Veri yapıları, verileri düzenleme biçimleridir."
	if got != want {
		t.Errorf("Answer = %q, want %q", got, want)
	}
	if fake.calls != 1 {
		t.Errorf("completion calls = %d, want 1", fake.calls)
	}
}

func TestAnswerCompletionFailure(t *testing.T) {
	fake := &fakeProvider{err: errors.New("upstream down")}
	answerer := NewChatAnswerer(fake, nopLogger{})

	got := answerer.Answer(context.Background(), "Veri yapıları nedir?", []string{"Veri Yapıları"}, nil)
	want := RenderTemplate(constant.ChatFailureReplyTemplate, map[string]string{"topic": "Veri Yapıları"})
	if got != want {
		t.Errorf("Answer = %q, want %q", got, want)
	}
}
