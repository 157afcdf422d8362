package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/Shimizu-Technology/doc2deck/internal/services/segmenter"
)

// DefaultEndpoint is the OpenRouter chat completions URL.
const DefaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// ErrNotConfigured is returned when no API key was provided.
var ErrNotConfigured = errors.New("OpenRouter API key not configured; set OPENROUTER_API_KEY")

var blankLines = regexp.MustCompile(`\n+`)

// OpenRouter is the Writer backed by a hosted model.
//
// OpenRouter provides a unified API for multiple LLM providers using a
// single API key. The request format follows the OpenAI chat completions
// standard.
type OpenRouter struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewOpenRouter creates a model-backed Writer.
func NewOpenRouter(apiKey, model string, timeout time.Duration) *OpenRouter {
	return &OpenRouter{
		apiKey:   apiKey,
		model:    model,
		endpoint: DefaultEndpoint,
		// Go Pattern: Always configure timeouts on HTTP clients.
		// The default http.Client has NO timeout — requests can hang forever!
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithEndpoint points the client at another chat completions URL.
func (o *OpenRouter) WithEndpoint(url string) *OpenRouter {
	o.endpoint = url
	return o
}

// --- OpenRouter API types ---

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// GenerateNotes implements Writer.
func (o *OpenRouter) GenerateNotes(ctx context.Context, text string) (string, error) {
	log.Printf("🤖 Generating study notes using %s", o.model)

	content, err := o.complete(ctx, notesPrompt(text))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("model returned empty notes")
	}
	return content, nil
}

// ReviewNotes implements Writer.
func (o *OpenRouter) ReviewNotes(ctx context.Context, notes string) ([]string, error) {
	log.Printf("🤖 Reviewing presentation using %s", o.model)

	content, err := o.complete(ctx, feedbackPrompt(notes))
	if err != nil {
		return nil, err
	}

	feedback := feedbackLines(content)
	if len(feedback) == 0 {
		return nil, fmt.Errorf("model returned empty feedback")
	}
	return feedback, nil
}

// complete sends one user message and returns the first choice's content.
func (o *OpenRouter) complete(ctx context.Context, prompt string) (string, error) {
	if o.apiKey == "" {
		return "", ErrNotConfigured
	}

	jsonBody, err := json.Marshal(chatRequest{
		Model:    o.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Title", "Doc2Deck")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("OpenRouter request failed: %w", err)
	}
	defer resp.Body.Close() // Go Pattern: ALWAYS close response bodies!

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenRouter returned %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("OpenRouter error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// cleanText removes page markers and collapses blank lines before the
// text is sent to the model.
func cleanText(text string) string {
	text = segmenter.StripPageMarkers(text)
	return strings.TrimSpace(blankLines.ReplaceAllString(text, "\n"))
}

// feedbackLines splits a model reply into at most MaxFeedback
// trimmed, non-empty lines.
func feedbackLines(content string) []string {
	var lines []string
	for _, l := range strings.Split(content, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
		if len(lines) == MaxFeedback {
			break
		}
	}
	return lines
}

func notesPrompt(text string) string {
	return fmt.Sprintf(`Create comprehensive study notes from this content. Follow these rules:

1. Write complete sentences and paragraphs - no incomplete thoughts
2. Use proper headings from the document (## for main topics)
3. Never use bullet points as headings or titles
4. Write in flowing paragraph format with complete explanations
5. Include all important information - don't skip content
6. Use original document structure and headings
7. Don't mention page numbers

Content:
%s

Create well-structured study notes with proper headings and full paragraphs.`, cleanText(text))
}

func feedbackPrompt(notes string) string {
	return fmt.Sprintf(`Review this presentation content and give 3-5 specific feedback points:

%s

Focus on: slide length, clarity, structure, best practices.`, notes)
}
