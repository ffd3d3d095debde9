// Package media extracts plain text from input media. Every extractor
// is a thin wrapper over an external collaborator — the tesseract and
// ffmpeg binaries, a transcription API, document parsers, the network —
// and produces text ready for the MCQ pipeline. No recognition
// algorithms live here.
package media

import (
	"regexp"
	"strings"
)

var (
	nonASCIIRE      = regexp.MustCompile(`[^\x00-\x7F]+`)
	extraNewlinesRE = regexp.MustCompile(`\n{2,}`)
	extraSpacesRE   = regexp.MustCompile(`[ \t]{2,}`)
)

// CleanText normalizes raw extracted text: non-ASCII runs become a
// space, blank-line runs collapse to one newline, space runs collapse
// to one space.
func CleanText(text string) string {
	text = nonASCIIRE.ReplaceAllString(text, " ")
	text = extraNewlinesRE.ReplaceAllString(text, "\n")
	text = extraSpacesRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
