//go:build ignore

// Word frequencies over a baked-in paragraph. Exercises: ignore case
// properly with strings.ToLower before counting, then filter stop words.
package main

import (
	"fmt"
	"sort"
	"strings"
)

const text = `the quick brown fox jumps over the lazy dog
the dog barks and the fox runs
quick thinking saves the quick fox`

func main() {
	counts := map[string]int{}
	for _, w := range strings.Fields(text) {
		counts[w]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	fmt.Printf("%d distinct words\n", len(words))
	for _, w := range words[:5] {
		fmt.Printf("%3d  %s\n", counts[w], w)
	}
}
