// Package textutil provides small string and slice helpers shared by the
// CLI and rendering layers: display truncation, label casing, and
// order-preserving slice transforms.
package textutil

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// truncateSuffix marks values shortened for display.
const truncateSuffix = "..."

// titleCaser is shared; cases.Caser is cheap but not trivially constructed.
//
//nolint:gochecknoglobals // Caser reuse is idiomatic for x/text/cases usage.
var titleCaser = cases.Title(language.English)

// Truncate shortens s to at most maxLen runes, replacing the tail with
// "..." when it does. maxLen values too small to fit the suffix return the
// bare prefix.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= len(truncateSuffix) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(truncateSuffix)]) + truncateSuffix
}

// TitleCase converts a raw field key like "start_date" or "salary" into a
// display label like "Start Date". Underscores and hyphens become spaces
// before casing.
func TitleCase(s string) string {
	cleaned := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '_' || r == '-' {
			cleaned = append(cleaned, ' ')
			continue
		}
		cleaned = append(cleaned, r)
	}
	return titleCaser.String(string(cleaned))
}

// Dedupe returns the items with duplicates removed, keeping the first
// occurrence of each and preserving order.
func Dedupe[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Chunk splits items into consecutive groups of at most size elements. The
// final chunk may be shorter. size must be at least 1.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, fmt.Errorf("chunk size must be >= 1, got %d", size)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks, nil
}

// MostFrequent returns the most common item and its count, breaking ties
// in favor of the earliest first occurrence. The bool is false for empty
// input.
func MostFrequent[T comparable](items []T) (T, int, bool) {
	var best T
	if len(items) == 0 {
		return best, 0, false
	}

	counts := make(map[T]int, len(items))
	bestCount := 0
	for _, item := range items {
		counts[item]++
		if counts[item] > bestCount {
			best = item
			bestCount = counts[item]
		}
	}
	return best, bestCount, true
}
