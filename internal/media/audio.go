package media

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber converts audio files to text.
type Transcriber interface {
	AudioToText(ctx context.Context, audioPath string) (string, error)
}

// WhisperTranscriber transcribes audio through an OpenAI-compatible
// audio transcription endpoint (Whisper).
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

// NewWhisperTranscriber creates a transcriber against the given API key
// and optional base URL override.
func NewWhisperTranscriber(apiKey, baseURL string) (*WhisperTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("transcription API key is required")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &WhisperTranscriber{
		client: openai.NewClientWithConfig(config),
		model:  openai.Whisper1,
	}, nil
}

// AudioToText uploads the audio file and returns the transcript.
func (w *WhisperTranscriber) AudioToText(ctx context.Context, audioPath string) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", audioPath, err)
	}

	return strings.TrimSpace(resp.Text), nil
}
