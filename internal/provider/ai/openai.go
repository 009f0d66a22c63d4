// internal/provider/ai/openai.go
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"homework-service/internal/domain"
)

const (
	textModel     = "gpt-3.5-turbo"
	visionModel   = "gpt-4o"
	textMaxTokens = 150
	// Vision answers get a larger budget.
	visionMaxTokens = 300
)

// OpenAIClient calls the chat completions API. Questions with a photo go
// to a vision-capable model with the image inlined as a base64 data URL;
// text-only questions use the cheaper model. No retries, no streaming.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		baseURL:    "https://api.openai.com/v1",
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *OpenAIClient) Answer(ctx context.Context, req *domain.AskRequest) (string, error) {
	request := chatRequest{
		Model:     textModel,
		MaxTokens: textMaxTokens,
		Messages: []chatMessage{
			{Role: "user", Content: req.Question},
		},
	}

	if req.Photo != nil {
		dataURL := fmt.Sprintf("data:%s;base64,%s",
			req.Photo.MimeType,
			base64.StdEncoding.EncodeToString(req.Photo.Data))

		request = chatRequest{
			Model:     visionModel,
			MaxTokens: visionMaxTokens,
			Messages: []chatMessage{
				{
					Role: "user",
					Content: []contentPart{
						{Type: "text", Text: req.Question},
						{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
					},
				},
			},
		}
	}

	completion, err := c.createCompletion(ctx, request)
	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) createCompletion(ctx context.Context, request chatRequest) (*chatResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		responseBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("completion failed: %s", string(responseBody))
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to parse completion: %w", err)
	}
	return &completion, nil
}
