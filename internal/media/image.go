package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// OCR runs optical character recognition on image files. The default
// implementation shells out to the tesseract binary; tests substitute
// a fake.
type OCR interface {
	ImageToText(ctx context.Context, imagePath string) (string, error)
}

// TesseractOCR extracts text from images using the tesseract binary.
type TesseractOCR struct {
	// Binary is the tesseract executable. Defaults to "tesseract".
	Binary string
}

// NewTesseractOCR returns a TesseractOCR using the tesseract on PATH.
func NewTesseractOCR() *TesseractOCR {
	return &TesseractOCR{Binary: "tesseract"}
}

// Available reports whether the tesseract binary can be executed.
func (t *TesseractOCR) Available() bool {
	return exec.Command(t.binary(), "--version").Run() == nil
}

// ImageToText OCRs the image at imagePath and returns cleaned text.
// "stdout" as the output name makes tesseract write to stdout instead
// of a file; --psm 6 assumes a uniform block of text.
func (t *TesseractOCR) ImageToText(ctx context.Context, imagePath string) (string, error) {
	var out, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, t.binary(), imagePath, "stdout", "--oem", "3", "--psm", "6")
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract %s: %w: %s", imagePath, err, stderr.String())
	}

	return CleanText(out.String()), nil
}

func (t *TesseractOCR) binary() string {
	if t.Binary != "" {
		return t.Binary
	}
	return "tesseract"
}
