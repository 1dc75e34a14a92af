package freq

import (
	"reflect"
	"testing"
)

func TestBuildCounts(t *testing.T) {
	table := Build([]string{"gato", "gato", "cachorro"})
	if table.Total() != 3 {
		t.Fatalf("Total = %d, want 3", table.Total())
	}
	if table.Distinct() != 2 {
		t.Fatalf("Distinct = %d, want 2", table.Distinct())
	}
	if table.Count("gato") != 2 || table.Count("cachorro") != 1 {
		t.Fatalf("unexpected counts: gato=%d cachorro=%d", table.Count("gato"), table.Count("cachorro"))
	}
	if table.Count("ausente") != 0 {
		t.Fatal("absent word should count zero")
	}
}

func TestTopNOrdering(t *testing.T) {
	table := Build([]string{"gato", "gato", "cachorro"})
	got := table.TopN(2)
	want := []Entry{{"gato", 2}, {"cachorro", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TopN = %v, want %v", got, want)
	}
}

func TestTopNTieBreakByFirstOccurrence(t *testing.T) {
	// zebra appears before abelha; both count 2, so zebra must come first
	// despite lexicographic order.
	tokens := []string{"zebra", "abelha", "zebra", "abelha", "casa"}
	got := Build(tokens).TopN(3)
	want := []Entry{{"zebra", 2}, {"abelha", 2}, {"casa", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TopN = %v, want %v", got, want)
	}
}

func TestTopNDeterministicAcrossRuns(t *testing.T) {
	tokens := []string{"d", "c", "b", "a", "d", "c", "b", "a", "e"}
	first := Build(tokens).TopN(5)
	for i := 0; i < 50; i++ {
		if got := Build(tokens).TopN(5); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %v vs %v", i, got, first)
		}
	}
}

func TestTopNBounds(t *testing.T) {
	table := Build([]string{"um", "dois", "dois"})
	if got := table.TopN(10); len(got) != table.Distinct() {
		t.Fatalf("TopN larger than vocabulary should clamp, got %d", len(got))
	}
	if got := table.TopN(0); got != nil {
		t.Fatalf("TopN(0) should be nil, got %v", got)
	}
	if got := Build(nil).TopN(5); got != nil {
		t.Fatalf("empty table TopN should be nil, got %v", got)
	}
}

func TestCountsSumToTotal(t *testing.T) {
	tokens := []string{"a1", "b2", "a1", "c3", "c3", "c3"}
	table := Build(tokens)
	sum := 0
	for _, e := range table.TopN(table.Distinct()) {
		sum += e.Count
	}
	if sum != table.Total() {
		t.Fatalf("sum of counts %d != total %d", sum, table.Total())
	}
}
