package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lahari/mcqgen/internal/llm"
	"github.com/lahari/mcqgen/internal/mcq"
	"github.com/lahari/mcqgen/internal/media"
	"github.com/lahari/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate multiple-choice questions from text, a file, or a URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		numQuestions, _ := cmd.Flags().GetInt("questions")
		asJSON, _ := cmd.Flags().GetBool("json")
		strict, _ := cmd.Flags().GetBool("strict")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		text, err := sourceText(ctx, cmd)
		if err != nil {
			return err
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		cfg := mcq.DefaultConfig()
		cfg.StrictSchema = strict
		gen := mcq.NewGenerator(provider, cfg)

		questions, err := gen.Generate(ctx, text, numQuestions)
		if err != nil {
			return err
		}

		if asJSON {
			out, err := json.MarshalIndent(questions, "", "  ")
			if err != nil {
				return fmt.Errorf("encode questions: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		printQuestions(questions)
		return nil
	},
}

// sourceText resolves the --text, --file, and --url flags into plain text.
// Exactly one source must be given.
func sourceText(ctx context.Context, cmd *cobra.Command) (string, error) {
	text, _ := cmd.Flags().GetString("text")
	file, _ := cmd.Flags().GetString("file")
	pageURL, _ := cmd.Flags().GetString("url")

	given := 0
	for _, s := range []string{text, file, pageURL} {
		if s != "" {
			given++
		}
	}
	if given != 1 {
		return "", fmt.Errorf("exactly one of --text, --file, or --url is required")
	}

	switch {
	case text != "":
		return media.CleanText(text), nil
	case pageURL != "":
		return media.NewURLExtractor(media.NewTesseractOCR()).URLToText(ctx, pageURL)
	default:
		return fileText(ctx, file)
	}
}

// fileText extracts plain text from a local file, dispatching on extension.
func fileText(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return media.CleanText(string(data)), nil

	case ".png", ".jpg", ".jpeg", ".bmp", ".tiff", ".gif":
		ocr := media.NewTesseractOCR()
		if !ocr.Available() {
			return "", fmt.Errorf("tesseract not found in PATH; required for image input")
		}
		return ocr.ImageToText(ctx, path)

	case ".mp3", ".wav", ".m4a", ".flac", ".ogg":
		t, err := newTranscriber()
		if err != nil {
			return "", err
		}
		return t.AudioToText(ctx, path)

	case ".mp4", ".mov", ".avi", ".mkv", ".webm":
		t, err := newTranscriber()
		if err != nil {
			return "", err
		}
		v := &media.VideoExtractor{Transcriber: t}
		return v.VideoToText(ctx, path)

	case ".pdf", ".docx", ".doc":
		d := &media.DocumentExtractor{OCR: media.NewTesseractOCR()}
		return d.DocumentToText(ctx, path)

	default:
		return "", &media.UnsupportedMediaError{Filename: filepath.Base(path)}
	}
}

func newTranscriber() (*media.WhisperTranscriber, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	t, err := media.NewWhisperTranscriber(apiKey, os.Getenv("MCQGEN_OPENAI_BASE_URL"))
	if err != nil {
		return nil, fmt.Errorf("transcription requires OPENAI_API_KEY: %w", err)
	}
	return t, nil
}

func printQuestions(questions mcq.QuestionSet) {
	for i, q := range questions {
		fmt.Printf("%s. %s\n", questions.Key(i), q.Prompt)
		for _, key := range q.OptionKeys() {
			fmt.Printf("   %s) %s\n", key, q.Options[key])
		}
		fmt.Printf("   Answer: %s\n", strings.Join(mcq.ResolveCorrect(q), ", "))
		if q.Explanation != "" {
			fmt.Printf("   Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}
}

func init() {
	generateCmd.Flags().StringP("text", "t", "", "Raw text to generate questions from")
	generateCmd.Flags().StringP("file", "f", "", "Path to a text, document, image, audio, or video file")
	generateCmd.Flags().StringP("url", "u", "", "Web page to generate questions from")
	generateCmd.Flags().IntP("questions", "n", 5, "Number of questions to generate")
	generateCmd.Flags().Bool("json", false, "Print questions as JSON")
	generateCmd.Flags().Bool("strict", false, "Validate LLM responses against a JSON schema")
}
