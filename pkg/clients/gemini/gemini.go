// Package gemini provides a minimal client for the Gemini generateContent API.
package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	apiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"
)

// Client defines the text generation capability consumed by the AI analysis.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient creates a configured Gemini client.
func NewClient(apiKey string) Client {
	client := resty.New().
		SetHeader("content-type", "application/json").
		SetTimeout(15 * time.Second)

	return &geminiClient{httpClient: client, apiKey: apiKey}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt and returns the first candidate's text.
func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var respBody generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(apiURL)

	if err != nil {
		return "", fmt.Errorf("gemini api call: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini api error: %s", resp.String())
	}
	if len(respBody.Candidates) == 0 || len(respBody.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	return respBody.Candidates[0].Content.Parts[0].Text, nil
}
