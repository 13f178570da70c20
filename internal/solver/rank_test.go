package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"":      0,
		"eeeee": 0,
		"crane": 18, // c9 r2 a1 n6 e0
		"slate": 21,
		"input": 36,
		"zonal": 42,
		"CRANE": 18,
		"a-b":   1 + 16,
	}
	for w, want := range cases {
		assert.Equal(t, want, Score(w), w)
	}
}

func TestRank_AnagramsKeepDictionaryOrder(t *testing.T) {
	t.Parallel()

	dict := []string{"steal", "zonal", "crane", "least", "slate", "stale"}
	want := []string{"crane", "steal", "least", "slate", "stale", "zonal"}

	if diff := cmp.Diff(want, Rank(dict)); diff != "" {
		t.Fatalf("Rank mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"steal", "zonal", "crane", "least", "slate", "stale"}, dict, "input untouched")
}

func TestEvaluateScored_SortedAscending(t *testing.T) {
	t.Parallel()

	got := EvaluateScored(sample, rows{})
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Score, got[i].Score)
	}
	for _, m := range got {
		assert.Equal(t, Score(m.Word), m.Score)
	}
}

func TestTop(t *testing.T) {
	t.Parallel()

	m := []Match{{"a", 1}, {"b", 2}, {"c", 3}}
	assert.Len(t, Top(m, 2), 2)
	assert.Len(t, Top(m, 0), 3)
	assert.Len(t, Top(m, 50), 3)
	assert.Len(t, Top(m, -1), 3)
}
