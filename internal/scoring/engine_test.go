package scoring

import "testing"

func TestScore(t *testing.T) {
	cases := []struct {
		name    string
		answers map[int]int
		want    int
	}{
		{"single answer selects its dimension", map[int]int{1: 5}, 1},
		{"empty answers default to type one", map[int]int{}, 1},
		{"nil answers default to type one", nil, 1},
		{"highest total wins", map[int]int{1: 2, 2: 5, 3: 3}, 2},
		{"tie resolves to lowest type", map[int]int{2: 4, 5: 4}, 2},
		{"tie across three types resolves lowest", map[int]int{3: 3, 7: 3, 9: 3}, 3},
		{"unknown question ids are ignored", map[int]int{42: 5, 3: 1}, 3},
		{"only unknown ids behave like empty", map[int]int{42: 5, 99: 5}, 1},
	}
	for _, c := range cases {
		if got := Score(c.answers); got != c.want {
			t.Fatalf("%s: Score(%v)=%d, want %d", c.name, c.answers, got, c.want)
		}
	}
}
