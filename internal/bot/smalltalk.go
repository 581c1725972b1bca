package bot

import "strings"

// CannedReply produces the bot turn for the plain free-text chat path.
// Deliberately dumb keyword routing; the coin-query path is where the real
// logic lives.
func CannedReply(content string) string {
	lower := strings.ToLower(content)

	switch {
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi"):
		return "Hello! How can I help you today?"
	case strings.Contains(lower, "price") || strings.Contains(lower, "cost"):
		return "I can help you with price information. What specific item are you interested in?"
	case strings.Contains(lower, "help"):
		return "I can help you with:\n1. Price information\n2. Order status\n3. Account issues\n4. Technical support\nWhat do you need help with?"
	case strings.Contains(lower, "thank"):
		return "You're welcome! Is there anything else I can help you with?"
	default:
		return "I'm not sure I understand. Could you please rephrase your question?"
	}
}
