package generator

import (
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare object",
			raw:  `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "fenced with language tag",
			raw:  "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "fenced without language tag",
			raw:  "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "leading prose",
			raw:  "Elbette, işte sonuç:\n{\"a\": 1}",
			want: `{"a": 1}`,
		},
		{
			name: "trailing prose",
			raw:  `{"a": 1} Umarım yardımcı olur.`,
			want: `{"a": 1}`,
		},
		{
			name: "prose on both sides with emphasis",
			raw:  "**Sonuç**\n```json\n{\"a\": 1}\n```\nBaşka bir şey lazım mı?",
			want: `{"a": 1}`,
		},
		{
			name: "trailing prose containing braces",
			raw:  `{"a": {"b": 2}} ve örnek kullanım: {yanlış}`,
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "nested object survives intact",
			raw:  `önce biraz metin {"outer": {"inner": [1, 2, 3]}}`,
			want: `{"outer": {"inner": [1, 2, 3]}}`,
		},
		{
			name: "no object at all",
			raw:  "Üzgünüm, bunu yapamam.",
			want: "{}",
		},
		{
			name: "unbalanced braces",
			raw:  `{"a": 1`,
			want: "{}",
		},
		{
			name: "empty input",
			raw:  "",
			want: "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSON(tt.raw, ShapeObject)
			if got != tt.want {
				t.Errorf("ExtractJSON = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare array",
			raw:  `[1, 2, 3]`,
			want: `[1, 2, 3]`,
		},
		{
			name: "fenced array with prose",
			raw:  "İşte liste:\n```json\n[\"a\", \"b\"]\n```",
			want: `["a", "b"]`,
		},
		{
			name: "object is not an array",
			raw:  `{"a": [1]}`,
			want: `[1]`,
		},
		{
			name: "nothing usable",
			raw:  "maalesef",
			want: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSON(tt.raw, ShapeArray)
			if got != tt.want {
				t.Errorf("ExtractJSON = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	got := CleanText("  **Önemli**\nbir\n\nnot # başlık  ")
	want := "Önemli bir not başlık"
	if got != want {
		t.Errorf("CleanText = %q, want %q", got, want)
	}
}

func TestRenderTemplate(t *testing.T) {
	got := RenderTemplate(`{"x": "{field}"} ve {field}`, map[string]string{"field": "Go"})
	want := `{"x": "Go"} ve Go`
	if got != want {
		t.Errorf("RenderTemplate = %q, want %q", got, want)
	}
}
