package usecase

import (
	"strings"

	"aura-portal/internal/domain"
)

// buildRelayMessages produces the exact two messages sent upstream: the fixed
// assistant instruction and the user message verbatim.
func buildRelayMessages(message string) []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: assistantSystemPrompt()},
		{Role: domain.RoleUser, Content: message},
	}
}

func assistantSystemPrompt() string {
	return strings.Join([]string{
		"Role:",
		"You are AURA, the embedded assistant for a health and recruiting dashboard.",
		"",
		"Task:",
		"Answer the user's question in clear, professional prose.",
		"",
		"Behavior Rules:",
		behaviorRules(),
		"",
		"Disclaimer:",
		"For any medical topic, remind the user that this is general information and that they should consult a qualified healthcare professional.",
	}, "\n")
}

func behaviorRules() string {
	return strings.Join([]string{
		"1) Answer only the current user message.",
		"2) Keep responses professional and concise.",
		"3) Never claim to have access to patient records, job postings, or candidate files.",
		"4) Never present yourself as a substitute for professional medical or legal advice.",
	}, "\n")
}
