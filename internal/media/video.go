package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// VideoExtractor pulls the audio track out of a video and delegates to a
// Transcriber. Audio extraction shells out to ffmpeg.
type VideoExtractor struct {
	Transcriber Transcriber

	// Binary is the ffmpeg executable. Defaults to "ffmpeg".
	Binary string
}

// VideoToText extracts a mono 16kHz WAV track from the video and
// transcribes it. The intermediate audio file is removed on every exit
// path once transcription has run.
func (v *VideoExtractor) VideoToText(ctx context.Context, videoPath string) (string, error) {
	audioPath, err := v.extractAudio(ctx, videoPath)
	if err != nil {
		return "", err
	}
	defer os.Remove(audioPath)

	return v.Transcriber.AudioToText(ctx, audioPath)
}

// extractAudio writes the video's audio track to a temp WAV file,
// downmixed to mono at 16kHz — the rate speech models expect.
func (v *VideoExtractor) extractAudio(ctx context.Context, videoPath string) (string, error) {
	tmp, err := os.CreateTemp("", "mcqgen-audio-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp audio file: %w", err)
	}
	audioPath := tmp.Name()
	tmp.Close()

	binary := v.Binary
	if binary == "" {
		binary = "ffmpeg"
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary,
		"-i", videoPath,
		"-ac", "1",
		"-ar", "16000",
		"-y",
		audioPath,
	)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(audioPath)
		return "", fmt.Errorf("ffmpeg %s: %w: %s", filepath.Base(videoPath), err, stderr.String())
	}

	return audioPath, nil
}
