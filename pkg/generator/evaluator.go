package generator

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"yolcu-backend/internal/constant"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/pkg/llm"
)

// ProjectEvaluator reviews a candidate's project code against the suggestion
// it was built from. The evaluation is stored and served as an opaque JSON
// document, so Evaluate returns the sanitized JSON string rather than a typed
// struct; an unusable model response coerces to "{}".
type ProjectEvaluator struct {
	ai  llm.Provider
	log logger.ILogger
}

func NewProjectEvaluator(ai llm.Provider, log logger.ILogger) *ProjectEvaluator {
	return &ProjectEvaluator{ai: ai, log: log}
}

func (e *ProjectEvaluator) Evaluate(ctx context.Context, suggestionTitle, suggestionDescription, projectCode string) (string, error) {
	prompt := RenderTemplate(constant.EvaluationPromptTemplate, map[string]string{
		"suggestion_title":       suggestionTitle,
		"suggestion_description": suggestionDescription,
		"project_code":           projectCode,
	})

	raw, err := e.ai.Generate(ctx, prompt, llm.WithTemperature(0.4))
	if err != nil {
		return "", fmt.Errorf("evaluation completion: %w", err)
	}

	clean := ExtractJSON(raw, ShapeObject)
	if clean == "{}" {
		e.log.Warn("ProjectEvaluator", "model output coerced to empty evaluation", map[string]interface{}{
			"raw_length": len(raw),
		})
	}
	return clean, nil
}

// ReadProjectFile extracts text from an uploaded project: a single source
// file, a PDF, or a zip archive of sources. Binary archive members are
// skipped; a wholly unreadable upload is ErrUnsupportedFile.
func ReadProjectFile(fileName string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return readPDF(data)
	case ".zip":
		return readZip(data)
	default:
		if !isTextual(data) {
			return "", ErrUnsupportedFile
		}
		return string(data), nil
	}
}

func readPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
	}
	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrUnsupportedFile
	}
	return sb.String(), nil
}

func readZip(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
	}

	var sb strings.Builder
	for _, member := range archive.File {
		if member.FileInfo().IsDir() {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			continue
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil || !isTextual(content) {
			continue
		}
		sb.WriteString("--- ")
		sb.WriteString(member.Name)
		sb.WriteString(" ---\n")
		sb.Write(content)
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return "", ErrUnsupportedFile
	}
	return sb.String(), nil
}

func isTextual(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) != -1 {
		return false
	}
	return utf8.Valid(data)
}
