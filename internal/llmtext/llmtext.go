// Package llmtext extracts machine-readable content from raw LLM output.
package llmtext

import (
	"fmt"
	"strings"

	adkmodel "google.golang.org/adk/model"
)

// StripMarkdownJSON extracts a JSON object from model output that may carry
// markdown code fences or conversational text around it. It trims
// whitespace, strips ```json and ``` fences, and scans for the first '{' to
// parse from. Returns an error if no '{' is found; the caller reports that
// as "response was not valid JSON" rather than a schema failure.
func StripMarkdownJSON(text string) (string, error) {
	content := strings.TrimSpace(text)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Find the first '{' that isn't part of a '{{' template pair. Plain
	// '{"' is not enough of a needle: pretty-printed JSON puts '{' on its
	// own line.
	start := -1
	for i := 0; i < len(content); i++ {
		if content[i] == '{' {
			if i+1 < len(content) && content[i+1] == '{' {
				i++
				continue
			}
			start = i
			break
		}
	}
	if start < 0 {
		return "", fmt.Errorf("no JSON object found in text")
	}
	return content[start:], nil
}

// ExtractText concatenates all text parts from an LLMResponse.
// Returns an empty string if the response or its content is nil.
func ExtractText(resp *adkmodel.LLMResponse) string {
	if resp == nil || resp.Content == nil {
		return ""
	}
	var text string
	for _, p := range resp.Content.Parts {
		if p.Text != "" {
			text += p.Text
		}
	}
	return text
}
