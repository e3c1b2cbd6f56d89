package similarity

import (
	"errors"
	"testing"

	"docstyle/internal/domain"
)

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name     string
		a        map[string]struct{}
		b        map[string]struct{}
		expected float64
	}{
		{"identical", set("a", "b", "c"), set("a", "b", "c"), 1.0},
		{"no overlap", set("a", "b", "c"), set("d", "e", "f"), 0.0},
		{"half overlap", set("a", "b"), set("b", "c"), 1.0 / 3.0},
		{"empty a", set(), set("a", "b"), 0.0},
		{"empty b", set("a", "b"), set(), 0.0},
		{"both empty", set(), set(), 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ab := Jaccard(tc.a, tc.b)
			ba := Jaccard(tc.b, tc.a)
			if !floatEquals(ab, tc.expected, 0.001) {
				t.Errorf("Jaccard(%v, %v) = %f, expected %f", tc.a, tc.b, ab, tc.expected)
			}
			if ab != ba {
				t.Errorf("Jaccard not symmetric: %f vs %f", ab, ba)
			}
			if ab < 0 || ab > 1 {
				t.Errorf("Jaccard out of range: %f", ab)
			}
		})
	}
}

func TestOverall(t *testing.T) {
	a := domain.NewDocument("a.txt", []string{"a", "bb", "ccc"})
	b := domain.NewDocument("b.txt", []string{"a", "bb", "ddd"})

	if got := Overall(a, b); !floatEquals(got, 0.5, 1e-9) {
		t.Errorf("expected overall 0.5, got %f", got)
	}
	if got := Overall(a, a); got != 1.0 {
		t.Errorf("expected self similarity 1.0, got %f", got)
	}
}

func TestByLength(t *testing.T) {
	a := domain.NewDocument("a", []string{"a", "bb", "ccc"})
	b := domain.NewDocument("b", []string{"a", "bb", "ddd", "eeeee"})

	got := ByLength(a, b)
	expected := []domain.LengthSimilarity{
		{Length: 1, Score: 1.0},
		{Length: 2, Score: 1.0},
		{Length: 3, Score: 0.0},
		{Length: 4, Score: 0.0},
		{Length: 5, Score: 0.0},
	}

	if len(got) != len(expected) {
		t.Fatalf("expected %d slots, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i].Length != expected[i].Length || !floatEquals(got[i].Score, expected[i].Score, 1e-9) {
			t.Errorf("slot %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}

	reversed := ByLength(b, a)
	for i := range got {
		if got[i] != reversed[i] {
			t.Errorf("slot %d not symmetric: %+v vs %+v", i, got[i], reversed[i])
		}
	}
}

func TestByLength_PartialOverlap(t *testing.T) {
	a := domain.NewDocument("a", []string{"cat", "dog", "ox"})
	b := domain.NewDocument("b", []string{"cat", "owl", "ant"})

	got := ByLength(a, b)
	if len(got) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(got))
	}
	if got[0].Score != 0 || got[1].Score != 0 {
		t.Errorf("expected empty slots to score 0, got %+v", got[:2])
	}
	if !floatEquals(got[2].Score, 0.25, 1e-9) {
		t.Errorf("expected 1/4 for length 3, got %f", got[2].Score)
	}
}

func TestPairs(t *testing.T) {
	a := domain.NewDocument("a", []string{"cat", "sat", "mat"})
	b := domain.NewDocument("b", []string{"mat", "sat", "hat"})

	got, err := Pairs(a, b, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a: {cat,sat} {mat,sat}; b: {mat,sat} {hat,sat}
	if !floatEquals(got, 1.0/3.0, 1e-9) {
		t.Errorf("expected 1/3, got %f", got)
	}

	single := domain.NewDocument("s", []string{"solo"})
	got, err = Pairs(single, single, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected empty pair sets to score 0, got %f", got)
	}
}

func TestLongerWords(t *testing.T) {
	short := domain.NewDocument("short", []string{"a", "bb"})
	long := domain.NewDocument("long", []string{"elephant", "giraffe"})

	longer, shorter, err := LongerWords(long, short)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if longer != "long" || shorter != "short" {
		t.Errorf("expected long over short, got %s over %s", longer, shorter)
	}

	longer, _, err = LongerWords(short, long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if longer != "long" {
		t.Errorf("expected long, got %s", longer)
	}
}

func TestLongerWords_TieFavoursSecond(t *testing.T) {
	a := domain.NewDocument("first", []string{"cat"})
	b := domain.NewDocument("second", []string{"dog"})

	longer, shorter, err := LongerWords(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if longer != "second" || shorter != "first" {
		t.Errorf("expected tie to favour second document, got %s", longer)
	}
}

func TestCompare(t *testing.T) {
	a := domain.NewDocument("a.txt", []string{"a", "bb", "ccc"})
	b := domain.NewDocument("b.txt", []string{"a", "bb", "ddd"})

	report, err := Compare(a, b, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.First != "a.txt" || report.Second != "b.txt" {
		t.Errorf("unexpected names: %+v", report)
	}
	if report.LongerWords != "b.txt" {
		t.Errorf("expected tie to favour b.txt, got %s", report.LongerWords)
	}
	if !floatEquals(report.Overall, 0.5, 1e-9) {
		t.Errorf("expected overall 0.5, got %f", report.Overall)
	}
	if len(report.ByLength) != 3 {
		t.Errorf("expected 3 length slots, got %d", len(report.ByLength))
	}
	// a: {a,bb} {a,ccc} {bb,ccc}; b: {a,bb} {a,ddd} {bb,ddd}
	if !floatEquals(report.PairSimilarity, 0.2, 1e-9) {
		t.Errorf("expected pair similarity 0.2, got %f", report.PairSimilarity)
	}
}

func TestCompare_Errors(t *testing.T) {
	full := domain.NewDocument("full", []string{"word", "another"})
	empty := domain.NewDocument("empty", nil)

	if _, err := Compare(full, empty, 2); !errors.Is(err, domain.ErrEmptyDocument) {
		t.Errorf("expected ErrEmptyDocument, got %v", err)
	}
	if _, err := Compare(full, full, 0); !errors.Is(err, domain.ErrInvalidSeparation) {
		t.Errorf("expected ErrInvalidSeparation, got %v", err)
	}
}

func floatEquals(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance
}
