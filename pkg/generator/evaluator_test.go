package generator

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestEvaluateCoercesToEmptyObject(t *testing.T) {
	fake := &fakeProvider{response: "Değerlendirme yapamadım."}
	ev := NewProjectEvaluator(fake, nopLogger{})

	got, err := ev.Evaluate(context.Background(), "Başlık", "Açıklama", "package main")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if got != "{}" {
		t.Errorf("Evaluate = %q, want {}", got)
	}
}

func TestEvaluateReturnsSanitizedJSON(t *testing.T) {
	fake := &fakeProvider{response: "İşte değerlendirme:\n```json\n{\"projeAmaci\": \"örnek\"}\n```"}
	ev := NewProjectEvaluator(fake, nopLogger{})

	got, err := ev.Evaluate(context.Background(), "Başlık", "Açıklama", "package main")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if got != `{"projeAmaci": "örnek"}` {
		t.Errorf("Evaluate = %q", got)
	}
}

func TestReadProjectFilePlainText(t *testing.T) {
	got, err := ReadProjectFile("main.go", []byte("package main\n"))
	if err != nil {
		t.Fatalf("ReadProjectFile error: %v", err)
	}
	if got != "package main\n" {
		t.Errorf("content = %q", got)
	}
}

func TestReadProjectFileBinary(t *testing.T) {
	_, err := ReadProjectFile("a.bin", []byte{0x00, 0x01, 0x02})
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("err = %v, want ErrUnsupportedFile", err)
	}
}

func TestReadProjectFileZip(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("src/main.go")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte("package main")); err != nil {
		t.Fatal(err)
	}

	bin, err := w.Create("assets/logo.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := bin.Write([]byte{0x89, 0x50, 0x00, 0x47}); err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ReadProjectFile("project.zip", buf.Bytes())
	if err != nil {
		t.Fatalf("ReadProjectFile error: %v", err)
	}
	if !bytes.Contains([]byte(got), []byte("--- src/main.go ---")) {
		t.Errorf("missing source member header in %q", got)
	}
	if !bytes.Contains([]byte(got), []byte("package main")) {
		t.Errorf("missing source content in %q", got)
	}
	if bytes.Contains([]byte(got), []byte("logo.png")) {
		t.Errorf("binary member should be skipped, got %q", got)
	}
}
