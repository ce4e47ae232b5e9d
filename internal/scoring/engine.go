package scoring

import "github.com/enneatest/api/internal/question"

// Score resolves the dominant Enneagram type for a set of Likert answers
// keyed by question id. Each answer value is added to the running total of
// the dimension its question measures; answers for unknown question ids
// are ignored. The scan over dimensions starts at type 1 with a floor of
// zero and only a strictly greater total moves the dominant type, so an
// empty answer set resolves to type 1 and ties resolve to the lowest type.
// Totals are not normalized by the number of questions per dimension.
func Score(answers map[int]int) int {
	totals := make(map[int]int)
	for id, value := range answers {
		q, ok := question.ByID(id)
		if !ok {
			continue
		}
		totals[q.Type] += value
	}

	dominant := 1
	highest := 0
	for t := 1; t <= 9; t++ {
		if totals[t] > highest {
			highest = totals[t]
			dominant = t
		}
	}
	return dominant
}
