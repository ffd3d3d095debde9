package media

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

// writeDocx builds a minimal docx container in the test temp dir.
func writeDocx(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}

func TestDocumentToText_Docx(t *testing.T) {
	path := writeDocx(t, map[string]string{
		"word/document.xml": documentXML,
	})

	d := &DocumentExtractor{}
	text, err := d.DocumentToText(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "First paragraph.\nSecond paragraph." {
		t.Errorf("unexpected text: %q", text)
	}
}

// fakeOCR returns a fixed string for every image.
type fakeOCR struct {
	text  string
	calls int
}

func (f *fakeOCR) ImageToText(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.text, nil
}

func TestDocumentToText_DocxWithImages(t *testing.T) {
	path := writeDocx(t, map[string]string{
		"word/document.xml":     documentXML,
		"word/media/image1.png": "not a real png",
	})

	ocr := &fakeOCR{text: "text inside image"}
	d := &DocumentExtractor{OCR: ocr}

	text, err := d.DocumentToText(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ocr.calls != 1 {
		t.Errorf("expected 1 OCR call, got %d", ocr.calls)
	}
	want := "First paragraph.\nSecond paragraph.\ntext inside image"
	if text != want {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestDocumentToText_UnsupportedExtension(t *testing.T) {
	d := &DocumentExtractor{}
	_, err := d.DocumentToText(context.Background(), "/tmp/notes.xlsx")
	if err == nil {
		t.Fatal("expected error")
	}
	var unsup *UnsupportedMediaError
	if !errors.As(err, &unsup) {
		t.Fatalf("expected UnsupportedMediaError, got %T", err)
	}
	if unsup.Filename != "notes.xlsx" {
		t.Errorf("unexpected filename: %q", unsup.Filename)
	}
}

func TestDocumentToText_MissingFile(t *testing.T) {
	d := &DocumentExtractor{}
	if _, err := d.DocumentToText(context.Background(), "/does/not/exist.docx"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWordXMLText(t *testing.T) {
	got := wordXMLText([]byte(documentXML))
	want := "First paragraph.\nSecond paragraph.\n"
	if got != want {
		t.Errorf("wordXMLText = %q, want %q", got, want)
	}
}
