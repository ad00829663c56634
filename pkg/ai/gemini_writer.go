package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type geminiParts struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []*geminiParts `json:"parts"`
	Role  string         `json:"role"`
}

type geminiRequest struct {
	Contents []*geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []*geminiCandidate `json:"candidates"`
}

// BlogDraft is the model's structured answer for a requested topic.
type BlogDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
}

var languageNames = map[string]string{
	"ru": "Russian",
	"en": "English",
	"kz": "Kazakh",
}

// BuildDraftPrompt produces the instruction sent to the model. Kept pure so
// prompt shape is testable without network access.
func BuildDraftPrompt(topic, language string) string {
	langName, ok := languageNames[language]
	if !ok {
		langName = languageNames["ru"]
	}
	return fmt.Sprintf(
		"Write a blog post in %s about: %s. "+
			"Reply with a JSON object only, no markdown fences, with keys "+
			`"title", "content" and "excerpt". Content should be 4-6 paragraphs.`,
		langName, topic,
	)
}

// GenerateBlogDraft asks Gemini for a blog draft on the given topic.
func GenerateBlogDraft(ctx context.Context, apiKey, topic, language string) (*BlogDraft, error) {
	payload := geminiRequest{
		Contents: []*geminiContent{
			{
				Parts: []*geminiParts{{Text: BuildDraftPrompt(topic, language)}},
				Role:  "user",
			},
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		"https://generativelanguage.googleapis.com/v1/models/gemini-1.5-flash:generateContent",
		bytes.NewBuffer(payloadJson),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-goog-api-key", apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return nil, err
	}
	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	raw := geminiRes.Candidates[0].Content.Parts[0].Text

	var draft BlogDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		// Model ignored the JSON instruction; salvage the text as content.
		return &BlogDraft{Title: topic, Content: raw}, nil
	}
	return &draft, nil
}
