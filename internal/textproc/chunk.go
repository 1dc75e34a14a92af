package textproc

import "strings"

// SplitChunks breaks text into segments of at most maxLen characters, cutting
// only on word boundaries. A single word longer than maxLen becomes its own
// chunk rather than being split mid-word. Used to keep model prompts inside
// input limits.
func SplitChunks(text string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = 1024
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var current []string
	length := 0
	for _, w := range words {
		wl := len(w) + 1
		if length+wl > maxLen && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
			length = 0
		}
		current = append(current, w)
		length += wl
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}
