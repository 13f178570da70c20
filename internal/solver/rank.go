package solver

import "sort"

// commonality lists letters from most to least frequent in English.
// A letter's index is its score contribution.
const commonality = "eariotnslcudpmhgbfywkvxzjq"

var letterRank = func() [256]int {
	var r [256]int
	for i := 0; i < len(commonality); i++ {
		r[commonality[i]] = i
		r[commonality[i]-'a'+'A'] = i
	}
	return r
}()

// Match is a word accepted by the grid and its commonality score.
type Match struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Score sums the commonality rank of every letter in word. Lower is
// more common. Letters outside a–z contribute 0.
func Score(word string) int {
	s := 0
	for i := 0; i < len(word); i++ {
		s += letterRank[word[i]]
	}
	return s
}

// Rank orders words by ascending score, keeping input order for ties.
// The input slice is not modified.
func Rank(words []string) []string {
	out := append([]string(nil), words...)
	sort.SliceStable(out, func(i, j int) bool { return Score(out[i]) < Score(out[j]) })
	return out
}

// Top truncates matches to at most k entries. k <= 0 returns all of them.
func Top(matches []Match, k int) []Match {
	if k <= 0 || k >= len(matches) {
		return matches
	}
	return matches[:k]
}

func sortMatches(m []Match) {
	sort.SliceStable(m, func(i, j int) bool { return m[i].Score < m[j].Score })
}
