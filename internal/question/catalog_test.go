package question

import "testing"

func TestCatalog(t *testing.T) {
	all := All()
	if len(all) != 9 {
		t.Fatalf("expected 9 questions, got %d", len(all))
	}
	for _, q := range all {
		if q.Text == "" {
			t.Fatalf("question %d has no text", q.ID)
		}
		if q.Type < 1 || q.Type > 9 {
			t.Fatalf("question %d measures out-of-range dimension %d", q.ID, q.Type)
		}
	}
}

func TestByID(t *testing.T) {
	q, ok := ByID(5)
	if !ok {
		t.Fatal("question 5 missing")
	}
	if q.Type != 5 {
		t.Fatalf("question 5 measures dimension %d", q.Type)
	}
	if _, ok := ByID(99); ok {
		t.Fatal("ByID(99) should not resolve")
	}
}
