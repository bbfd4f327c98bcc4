package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Whisper posts the WAV file to an OpenAI-compatible transcription
// endpoint (whisper.cpp server, faster-whisper, or the hosted APIs).
type Whisper struct {
	URL      string
	Model    string
	Language string

	client *http.Client
}

func NewWhisper(url, model, language string) *Whisper {
	return &Whisper{
		URL:      strings.TrimRight(url, "/"),
		Model:    model,
		Language: language,
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

func (w *Whisper) Transcribe(ctx context.Context, wavPath string) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	file, err := os.Open(wavPath)
	if err != nil {
		return "", fmt.Errorf("opening audio file: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(wavPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}

	if err := writer.WriteField("response_format", "json"); err != nil {
		return "", err
	}
	if w.Model != "" {
		if err := writer.WriteField("model", w.Model); err != nil {
			return "", err
		}
	}
	if w.Language != "" {
		if err := writer.WriteField("language", w.Language); err != nil {
			return "", err
		}
	}

	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		w.URL+"/v1/audio/transcriptions", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling transcription server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("transcription server returned %d: %s", resp.StatusCode, string(msg))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	return strings.TrimSpace(result.Text), nil
}
