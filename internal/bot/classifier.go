package bot

import "strings"

// Classifier detects which categories of crypto information a free-text
// prompt is asking for. It is pure: same prompt in, same set out.
type Classifier struct {
	keywords map[Category][]string
}

func NewClassifier() *Classifier {
	return &Classifier{keywords: defaultKeywords()}
}

// Classify normalizes the prompt once and tests every keyword of every
// category for case-insensitive substring containment. Keyword lists are
// not mutually exclusive, so several categories can match at once.
func (c *Classifier) Classify(prompt string) CategorySet {
	lower := strings.ToLower(prompt)

	detected := make(CategorySet)
	for cat, words := range c.keywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				detected.Add(cat)
				break
			}
		}
	}
	return detected
}

// CoinKeywords returns the coin keyword list in table order. The composer
// scans these against the prompt to find which coins were mentioned.
func (c *Classifier) CoinKeywords() []string {
	return c.keywords[CategoryCoin]
}
