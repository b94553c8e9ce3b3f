// Package advisor produces a plain-language commentary on the household's
// finances with Gemini.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Advisor holds a chat with the model, so follow-up questions keep the
// context of the reports already shown.
type Advisor struct {
	chat *genai.Chat
}

func systemInstruction() *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: `
		You are a careful household finance advisor. The user will show you
		markdown reports about their net worth, spending and income, all
		expressed in rubles.

		Read the figures exactly as written, never invent numbers that are
		not in the reports. Point out the few things that matter most: large
		category moves against the previous period, spending growing faster
		than income, projected dips in net worth.

		Answer in the language the user writes in. Be concise and concrete,
		this is a private person, not a corporation.
	`}}}
}

// New starts an advisory chat on the given client.
func New(ctx context.Context, client *genai.Client) (*Advisor, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(),
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("could not start advisor chat: %w", err)
	}
	return &Advisor{chat: chat}, nil
}

// Review sends the reports with an optional user question and returns the
// advisor's commentary.
func (a *Advisor) Review(ctx context.Context, question string, reports ...string) (string, error) {
	var b strings.Builder
	if question == "" {
		question = "What should I pay attention to this month?"
	}
	b.WriteString(question)
	for _, report := range reports {
		b.WriteString("\n\n---\n\n")
		b.WriteString(report)
	}

	resp, err := a.chat.Send(ctx, &genai.Part{Text: b.String()})
	if err != nil {
		return "", fmt.Errorf("advisor call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		out.WriteString(part.Text)
	}
	return out.String(), nil
}
