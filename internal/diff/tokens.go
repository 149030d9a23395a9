package diff

import "math"

// charsPerToken is a conservative blend of provider tokenizer averages
// (Claude ~4 chars/token, OpenAI ~3.5).
const charsPerToken = 3.5

// EstimateTokens gives a rough token count for text. It is advisory only,
// for the --debug diagnostic; requests are never gated on it.
func EstimateTokens(text string) int {
	return int(math.Ceil(float64(len(text)) / charsPerToken))
}
