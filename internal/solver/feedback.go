package solver

import (
	"strings"

	"github.com/robalobadob/wordle-solver/internal/grid"
)

// Feedback builds the row a player would enter after guessing guess
// against answer, using the standard two-pass marking:
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count the remaining (non-correct) answer letters.
//
// Pass 2:
//   - For each other guess letter: Present if a counted occurrence is
//     left (and consume it), Absent otherwise.
//
// Repeated letters therefore come out the way the game reports them.
// Both words must be Width letters a–z; otherwise ok is false.
func Feedback(answer, guess string) (row grid.Row, ok bool) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(answer) != grid.Width || len(guess) != grid.Width || !isAlpha(answer) || !isAlpha(guess) {
		return row, false
	}

	var counts [26]int
	for i := 0; i < grid.Width; i++ {
		row[i].Letter = rune(guess[i] - 'a' + 'A')
		if guess[i] == answer[i] {
			row[i].State = grid.Correct
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < grid.Width; i++ {
		if row[i].State == grid.Correct {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			row[i].State = grid.Present
			counts[j]--
		} else {
			row[i].State = grid.Absent
		}
	}
	return row, true
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
