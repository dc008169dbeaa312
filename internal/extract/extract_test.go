package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"cvforge/resume/render"
)

func renderedDocx(t *testing.T) []byte {
	t.Helper()
	reg := render.NewRegistry()
	doc := render.NewDocument()
	doc.Append(render.Paragraph{
		Style: render.StyleHeading,
		Runs:  []render.Run{{Text: "Experience"}},
	})
	doc.Append(render.Paragraph{
		Style: render.StyleBody,
		Runs:  []render.Run{{Text: "Shipped the billing pipeline"}},
	})
	data, err := render.Serialize(doc, reg)
	if err != nil {
		t.Fatalf("serialize docx: %v", err)
	}
	return data
}

func TestTextFromDocx(t *testing.T) {
	data := renderedDocx(t)

	text, err := Text(context.Background(), data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "resume.docx")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(text, "Experience") || !strings.Contains(text, "Shipped the billing pipeline") {
		t.Fatalf("unexpected extracted text: %q", text)
	}
}

func TestTextZipDocxNormalizes(t *testing.T) {
	data := renderedDocx(t)

	if _, err := Text(context.Background(), data, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextRealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if _, err := Text(context.Background(), buf.Bytes(), "application/zip", "notes.zip"); err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
}

func TestTextUnsupportedMime(t *testing.T) {
	if _, err := Text(context.Background(), []byte("plain"), "text/plain", "notes.txt"); err == nil {
		t.Fatal("expected unsupported mime error")
	}
}
