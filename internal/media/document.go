package media

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DocumentExtractor converts PDF and Word documents to plain text. Text
// content is read directly; images embedded in Word documents are run
// through OCR when one is configured.
type DocumentExtractor struct {
	// OCR handles embedded images. Nil disables image extraction and
	// only document text is returned.
	OCR OCR
}

// DocumentToText extracts text from a document, dispatching on the file
// extension. Unknown extensions return UnsupportedMediaError.
func (d *DocumentExtractor) DocumentToText(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return d.pdfToText(path)
	case ".docx", ".doc":
		return d.docxToText(ctx, path)
	default:
		return "", &UnsupportedMediaError{Filename: filepath.Base(path)}
	}
}

func (d *DocumentExtractor) pdfToText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var out strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("pdf page %d: %w", i, err)
		}
		out.WriteString(text)
		out.WriteString("\n")
	}

	return CleanText(out.String()), nil
}

// docxToText reads word/document.xml out of the docx zip container and
// collects paragraph text, then OCRs any images under word/media/.
func (d *DocumentExtractor) docxToText(ctx context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx %s: %w", filepath.Base(path), err)
	}
	defer zr.Close()

	var out strings.Builder
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("docx document.xml: %w", err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("docx document.xml: %w", err)
		}
		out.WriteString(wordXMLText(data))
	}

	if d.OCR != nil {
		for _, f := range zr.File {
			if !strings.HasPrefix(f.Name, "word/media/") {
				continue
			}
			text, err := d.ocrZipEntry(ctx, f)
			if err != nil {
				// Non-image media entries and unreadable images are
				// skipped rather than failing the whole document.
				continue
			}
			if text != "" {
				out.WriteString("\n")
				out.WriteString(text)
			}
		}
	}

	return CleanText(out.String()), nil
}

// ocrZipEntry writes a zip entry to a temp file so the OCR engine can
// read it, then removes the file.
func (d *DocumentExtractor) ocrZipEntry(ctx context.Context, f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	tmp, err := os.CreateTemp("", "mcqgen-docimg-*"+filepath.Ext(f.Name))
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, rc); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	return d.OCR.ImageToText(ctx, tmp.Name())
}

// wordXMLText walks WordprocessingML collecting the contents of <w:t>
// run elements, inserting a newline at each paragraph boundary.
func wordXMLText(data []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var out strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				var v string
				if err := dec.DecodeElement(&v, &el); err == nil {
					out.WriteString(v)
				}
			}
		case xml.EndElement:
			if el.Name.Local == "p" {
				out.WriteString("\n")
			}
		}
	}
	return out.String()
}
