package generator

import (
	"context"
	"errors"
	"testing"
)

func TestRoadmapGenerate(t *testing.T) {
	fake := &fakeProvider{response: "```json\n" + `{
  "diagramTitle": "Go Backend",
  "mainStages": [
    {
      "stageName": "Temeller",
      "subNodes": [
        {
          "centralNodeTitle": "Dil",
          "leftItems": [{"id": "a", "name": "Sözdizimi"}],
          "rightItems": [{"id": "b", "name": "Paketler"}]
        }
      ]
    }
  ]
}` + "\n```"}
	gen := NewRoadmapGenerator(fake, nopLogger{})

	doc, err := gen.Generate(context.Background(), "Go Backend")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if doc.DiagramTitle != "Go Backend" || len(doc.MainStages) != 1 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestRoadmapGenerateFillsMissingTitle(t *testing.T) {
	fake := &fakeProvider{response: `{"mainStages": [{"stageName": "X", "subNodes": []}]}`}
	gen := NewRoadmapGenerator(fake, nopLogger{})

	doc, err := gen.Generate(context.Background(), "Siber Güvenlik")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if doc.DiagramTitle != "Siber Güvenlik" {
		t.Errorf("DiagramTitle = %q, want field name fallback", doc.DiagramTitle)
	}
}

func TestRoadmapGenerateMalformed(t *testing.T) {
	for _, response := range []string{"sadece metin", `{"mainStages": []}`} {
		fake := &fakeProvider{response: response}
		gen := NewRoadmapGenerator(fake, nopLogger{})

		if _, err := gen.Generate(context.Background(), "Go"); !errors.Is(err, ErrMalformedAIResponse) {
			t.Errorf("response %q: err = %v, want ErrMalformedAIResponse", response, err)
		}
	}
}
