// Package model provides LLM interface implementations for text-generation
// providers. Graph generation only needs plain text completion, so the
// adapters here skip tool calling and streaming.
package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"

	"google.golang.org/genai"

	adkmodel "google.golang.org/adk/model"
)

var _ adkmodel.LLM = (*OpenAILLM)(nil)

const openaiDefaultBaseURL = "https://api.openai.com/v1"

// OpenAIOption configures an OpenAILLM instance.
type OpenAIOption func(*OpenAILLM)

// WithOpenAIBaseURL sets a custom base URL for the API endpoint.
// This is useful for OpenAI-compatible APIs like Ollama and LM Studio.
func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(o *OpenAILLM) {
		o.baseURL = url
	}
}

// WithOpenAIName sets a custom name for the LLM instance.
func WithOpenAIName(name string) OpenAIOption {
	return func(o *OpenAILLM) {
		o.name = name
	}
}

// OpenAILLM implements the ADK model.LLM interface for the OpenAI Chat
// Completions API and compatible endpoints.
type OpenAILLM struct {
	apiKey  string
	baseURL string
	name    string
	client  *http.Client
}

// NewOpenAILLM creates a new OpenAI LLM adapter.
func NewOpenAILLM(apiKey string, opts ...OpenAIOption) *OpenAILLM {
	llm := &OpenAILLM{
		apiKey:  apiKey,
		baseURL: openaiDefaultBaseURL,
		name:    "openai",
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(llm)
	}
	return llm
}

// Name returns the configured name of this LLM (default "openai").
func (o *OpenAILLM) Name() string {
	return o.name
}

// GenerateContent sends a chat completion request and returns an iterator
// that yields exactly one LLMResponse. The stream flag is accepted for
// interface compatibility and ignored.
func (o *OpenAILLM) GenerateContent(ctx context.Context, req *adkmodel.LLMRequest, stream bool) iter.Seq2[*adkmodel.LLMResponse, error] {
	return func(yield func(*adkmodel.LLMResponse, error) bool) {
		body := o.buildRequestBody(req)

		encoded, err := json.Marshal(body)
		if err != nil {
			yield(nil, fmt.Errorf("openai: failed to marshal request: %w", err))
			return
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(encoded))
		if err != nil {
			yield(nil, fmt.Errorf("openai: failed to create HTTP request: %w", err))
			return
		}
		httpReq.Header.Set("Content-Type", "application/json")
		if o.apiKey != "" {
			httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
		}

		httpResp, err := o.client.Do(httpReq)
		if err != nil {
			yield(nil, fmt.Errorf("openai: HTTP request failed: %w", err))
			return
		}
		defer httpResp.Body.Close()

		respBody, err := io.ReadAll(httpResp.Body)
		if err != nil {
			yield(nil, fmt.Errorf("openai: failed to read response body: %w", err))
			return
		}
		if httpResp.StatusCode != http.StatusOK {
			yield(nil, fmt.Errorf("openai: API returned status %d: %s", httpResp.StatusCode, string(respBody)))
			return
		}

		var apiResp openaiChatResponse
		if err := json.Unmarshal(respBody, &apiResp); err != nil {
			yield(nil, fmt.Errorf("openai: failed to unmarshal response: %w", err))
			return
		}
		if len(apiResp.Choices) == 0 {
			yield(nil, fmt.Errorf("openai: no choices in response"))
			return
		}

		yield(&adkmodel.LLMResponse{
			Content: genai.NewContentFromText(apiResp.Choices[0].Message.Content, genai.RoleModel),
		}, nil)
	}
}

func (o *OpenAILLM) buildRequestBody(req *adkmodel.LLMRequest) map[string]any {
	var messages []map[string]any

	if req.Config != nil && req.Config.SystemInstruction != nil {
		if text := contentText(req.Config.SystemInstruction); text != "" {
			messages = append(messages, map[string]any{"role": "system", "content": text})
		}
	}
	for _, content := range req.Contents {
		if text := contentText(content); text != "" {
			messages = append(messages, map[string]any{"role": openaiRole(content.Role), "content": text})
		}
	}

	body := map[string]any{
		"model":    req.Model,
		"messages": messages,
		"stream":   false,
	}
	if req.Config != nil {
		if req.Config.Temperature != nil {
			body["temperature"] = *req.Config.Temperature
		}
		if req.Config.MaxOutputTokens > 0 {
			body["max_tokens"] = req.Config.MaxOutputTokens
		}
	}
	return body
}

func contentText(c *genai.Content) string {
	if c == nil {
		return ""
	}
	var text string
	for _, p := range c.Parts {
		text += p.Text
	}
	return text
}

// openaiRole converts a genai role string to an OpenAI role string.
func openaiRole(role string) string {
	if role == genai.RoleModel {
		return "assistant"
	}
	return "user"
}

type openaiChatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}
