package market

import (
	"testing"

	"github.com/bobmcallan/myxview/internal/interfaces"
	"github.com/bobmcallan/myxview/internal/models"
)

func testUniverse() []models.InstrumentSnapshot {
	return []models.InstrumentSnapshot{
		{Ticker: "MAYBANK", Name: "Malayan Banking", Sector: "Finance", Industry: "Banks"},
		{Ticker: "CIMB", Name: "CIMB Group Holdings", Sector: "Finance", Industry: "Banks"},
		{Ticker: "TENAGA", Name: "Tenaga Nasional", Sector: "Utilities", Industry: "Electric Utilities"},
		{Ticker: "TOPGLOV", Name: "Top Glove", Sector: "Health Technology", Industry: "Medical Specialties"},
	}
}

func TestFilterUniverse_NoOptionsIsIdentity(t *testing.T) {
	universe := testUniverse()
	got := FilterUniverse(universe, interfaces.FilterOptions{})
	if len(got) != len(universe) {
		t.Fatalf("expected identity, got %d of %d", len(got), len(universe))
	}
	for i := range universe {
		if got[i].Ticker != universe[i].Ticker {
			t.Errorf("order changed at %d: %s vs %s", i, got[i].Ticker, universe[i].Ticker)
		}
	}
}

func TestFilterUniverse_NameCaseInsensitiveSubstring(t *testing.T) {
	got := FilterUniverse(testUniverse(), interfaces.FilterOptions{Name: "banking"})
	if len(got) != 1 || got[0].Ticker != "MAYBANK" {
		t.Fatalf("got %+v, want only MAYBANK", got)
	}
}

func TestFilterUniverse_SectorExact(t *testing.T) {
	got := FilterUniverse(testUniverse(), interfaces.FilterOptions{Sector: "Finance"})
	if len(got) != 2 {
		t.Fatalf("expected 2 finance records, got %d", len(got))
	}
	if FilterUniverse(testUniverse(), interfaces.FilterOptions{Sector: "finance"}) == nil {
		t.Fatal("expected non-nil slice")
	}
	if n := len(FilterUniverse(testUniverse(), interfaces.FilterOptions{Sector: "finance"})); n != 0 {
		t.Errorf("sector match must be exact, got %d records for lowercase", n)
	}
}

func TestFilterUniverse_Combined(t *testing.T) {
	got := FilterUniverse(testUniverse(), interfaces.FilterOptions{Name: "cimb", Sector: "Finance", Industry: "Banks"})
	if len(got) != 1 || got[0].Ticker != "CIMB" {
		t.Fatalf("got %+v, want only CIMB", got)
	}
}

func TestFilterUniverse_NoMatches(t *testing.T) {
	got := FilterUniverse(testUniverse(), interfaces.FilterOptions{Industry: "Airlines"})
	if len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestDistinctSectors_SortedDeduped(t *testing.T) {
	got := DistinctSectors(testUniverse())
	want := []string{"Finance", "Health Technology", "Utilities"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDistinct_SkipsEmptyValues(t *testing.T) {
	universe := append(testUniverse(), models.InstrumentSnapshot{Ticker: "BLANK", Name: "Blank Bhd"})
	for _, v := range DistinctIndustries(universe) {
		if v == "" {
			t.Fatal("empty industry value must be skipped")
		}
	}
}

func TestDistinct_ComposesWithFilter(t *testing.T) {
	// Distinct values over a filtered universe reflect only the survivors.
	filtered := FilterUniverse(testUniverse(), interfaces.FilterOptions{Sector: "Finance"})
	got := DistinctIndustries(filtered)
	if len(got) != 1 || got[0] != "Banks" {
		t.Fatalf("got %v, want [Banks]", got)
	}
}
