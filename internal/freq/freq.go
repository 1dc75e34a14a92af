// Package freq counts word occurrences and derives the lexical statistics
// reported by the tool: total token count, vocabulary size, and the top-N most
// frequent words. Output ordering is deterministic regardless of map iteration
// order.
package freq

import "sort"

// Entry pairs a word with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Table is a word frequency table. It is built once from a token stream and
// never mutated afterwards; first-occurrence order is retained so that ties in
// TopN resolve deterministically.
type Table struct {
	counts map[string]int
	order  []string // words in first-occurrence order
	total  int
}

// Build constructs a Table from a token sequence.
func Build(tokens []string) *Table {
	t := &Table{counts: make(map[string]int, len(tokens))}
	for _, tok := range tokens {
		if _, seen := t.counts[tok]; !seen {
			t.order = append(t.order, tok)
		}
		t.counts[tok]++
		t.total++
	}
	return t
}

// Count returns the occurrence count for a word, zero if absent.
func (t *Table) Count(word string) int {
	return t.counts[word]
}

// Total returns the total number of tokens counted.
func (t *Table) Total() int {
	return t.total
}

// Distinct returns the vocabulary size.
func (t *Table) Distinct() int {
	return len(t.counts)
}

// TopN returns the n most frequent words in descending count order. Words with
// equal counts are ordered by first occurrence in the input, so repeated runs
// over identical input produce identical output.
func (t *Table) TopN(n int) []Entry {
	if n <= 0 || len(t.order) == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(t.order))
	for _, w := range t.order {
		entries = append(entries, Entry{Word: w, Count: t.counts[w]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n:n]
}
