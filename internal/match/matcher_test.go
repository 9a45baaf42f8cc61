package match

import (
	"fmt"
	"testing"

	"github.com/discarr/discarr/internal/catalog"
)

func item(id int64, typ catalog.MediaType, title string, year int) *catalog.MediaItem {
	return &catalog.MediaItem{ID: id, Type: typ, Title: title, Year: year}
}

func intPtr(n int) *int { return &n }

func typePtr(t catalog.MediaType) *catalog.MediaType { return &t }

func TestSearch_ExactTitle(t *testing.T) {
	items := []*catalog.MediaItem{
		item(1, catalog.TypeMovie, "The Matrix", 1999),
		item(2, catalog.TypeMovie, "The Mask", 1994),
	}

	results := Search(items, "The Matrix", Options{})
	if len(results) == 0 {
		t.Fatal("Search() returned no results")
	}
	if results[0].Item.ID != 1 {
		t.Errorf("top result = item %d, want 1", results[0].Item.ID)
	}
	if results[0].Score != 100 {
		t.Errorf("top score = %d, want 100", results[0].Score)
	}
}

func TestSearch_CaseAndAccentInsensitive(t *testing.T) {
	items := []*catalog.MediaItem{
		item(1, catalog.TypeMovie, "Amélie", 2001),
	}

	results := Search(items, "AMELIE", Options{})
	if len(results) != 1 || results[0].Score != 100 {
		t.Fatalf("Search() = %v, want one result with score 100", results)
	}
}

func TestSearch_QueryIsCleaned(t *testing.T) {
	items := []*catalog.MediaItem{
		item(1, catalog.TypeMovie, "The Matrix", 1999),
	}

	// Retailer noise on the query must not defeat an exact match.
	results := Search(items, "The Matrix (Blu-ray) [1999]", Options{})
	if len(results) != 1 || results[0].Score != 100 {
		t.Fatalf("Search() = %v, want one result with score 100", results)
	}
}

func TestSearch_SubstringRelaxation(t *testing.T) {
	items := []*catalog.MediaItem{
		item(1, catalog.TypeMovie, "Star Wars Saga", 1977),
	}

	// "star wars" vs "star wars saga" scores below the plain acceptance
	// threshold but one contains the other, so it is kept.
	results := Search(items, "Star Wars", Options{})
	if len(results) != 1 {
		t.Fatalf("Search() returned %d results, want 1", len(results))
	}
	if results[0].Score >= 80 || results[0].Score < 60 {
		t.Errorf("score = %d, want substring-band score in [60,80)", results[0].Score)
	}
}

func TestSearch_RejectsDissimilar(t *testing.T) {
	items := []*catalog.MediaItem{
		item(1, catalog.TypeMovie, "Citizen Kane", 1941),
	}

	if results := Search(items, "The Matrix", Options{}); len(results) != 0 {
		t.Errorf("Search() = %v, want no results", results)
	}
}

func TestSearch_YearWindow(t *testing.T) {
	items := []*catalog.MediaItem{
		item(1, catalog.TypeMovie, "Dune", 1984),
		item(2, catalog.TypeMovie, "Dune", 2021),
		item(3, catalog.TypeMovie, "Dune", 0), // year unknown, always passes
	}

	results := Search(items, "Dune", Options{Year: intPtr(2020)})
	if len(results) != 2 {
		t.Fatalf("Search() returned %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Item.ID == 1 {
			t.Error("1984 item passed a 2020 year filter")
		}
	}
}

func TestSearch_TypeFilter(t *testing.T) {
	items := []*catalog.MediaItem{
		item(1, catalog.TypeMovie, "Fargo", 1996),
		item(2, catalog.TypeSeries, "Fargo", 2014),
	}

	results := Search(items, "Fargo", Options{Type: typePtr(catalog.TypeSeries)})
	if len(results) != 1 || results[0].Item.ID != 2 {
		t.Fatalf("Search() = %v, want only the series item", results)
	}
}

func TestSearch_BoundsResultCount(t *testing.T) {
	var items []*catalog.MediaItem
	for i := int64(1); i <= 15; i++ {
		items = append(items, item(i, catalog.TypeMovie, "Halloween", 0))
	}

	results := Search(items, "Halloween", Options{})
	if len(results) != 10 {
		t.Errorf("Search() returned %d results, want 10", len(results))
	}
}

func TestSearch_TiesKeepInsertionOrder(t *testing.T) {
	items := []*catalog.MediaItem{
		item(7, catalog.TypeMovie, "Ghost", 1990),
		item(3, catalog.TypeMovie, "Ghost", 0),
	}

	results := Search(items, "Ghost", Options{})
	if len(results) != 2 {
		t.Fatalf("Search() returned %d results, want 2", len(results))
	}
	got := fmt.Sprintf("%d,%d", results[0].Item.ID, results[1].Item.ID)
	if got != "7,3" {
		t.Errorf("tie order = %s, want 7,3", got)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	items := []*catalog.MediaItem{
		item(1, catalog.TypeMovie, "Anything", 2000),
	}

	if results := Search(items, "   ", Options{}); results != nil {
		t.Errorf("Search() = %v, want nil", results)
	}
}
