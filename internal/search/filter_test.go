package search

import (
	"testing"

	"property-listings-api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func sampleListing() *models.Property {
	return &models.Property{
		ID:              1,
		Title:           "Bright apartment near the park",
		Description:     "Renovated two-bedroom with balcony",
		Price:           250000,
		AreaSqm:         floatPtr(72.5),
		RoomCount:       intPtr(3),
		BathroomCount:   intPtr(1),
		FloorNumber:     intPtr(4),
		City:            "Warsaw",
		Street:          "Marszalkowska 10",
		PostalCode:      "00-001",
		TransactionType: models.TransactionSale,
		IsActive:        true,
		OwnerID:         42,
	}
}

func TestEmptyFilterMatchesEverything(t *testing.T) {
	var f Filter

	if len(f.Predicates()) != 0 {
		t.Fatalf("empty filter produced %d predicates, want 0", len(f.Predicates()))
	}
	if !f.Matches(sampleListing()) {
		t.Error("empty filter should match any listing")
	}

	inactive := sampleListing()
	inactive.IsActive = false
	if !f.Matches(inactive) {
		t.Error("empty filter should match inactive listings too")
	}
}

func TestActiveOnly(t *testing.T) {
	f := NewFilter()

	if !f.Matches(sampleListing()) {
		t.Error("active listing should match the default filter")
	}

	inactive := sampleListing()
	inactive.IsActive = false
	if f.Matches(inactive) {
		t.Error("inactive listing should not match the default filter")
	}
}

func TestCityIsCaseInsensitiveEquality(t *testing.T) {
	f := Filter{City: "warsaw"}

	if !f.Matches(sampleListing()) {
		t.Error("city match should ignore case")
	}

	f.City = "WARSAW"
	if !f.Matches(sampleListing()) {
		t.Error("city match should ignore case")
	}

	f.City = "War"
	if f.Matches(sampleListing()) {
		t.Error("city is an equality check, not a prefix match")
	}

	f.City = "Krakow"
	if f.Matches(sampleListing()) {
		t.Error("different city should not match")
	}
}

func TestPriceRange(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want bool
	}{
		{"inside range", Filter{MinPrice: floatPtr(200000), MaxPrice: floatPtr(300000)}, true},
		{"on min boundary", Filter{MinPrice: floatPtr(250000)}, true},
		{"on max boundary", Filter{MaxPrice: floatPtr(250000)}, true},
		{"below min", Filter{MinPrice: floatPtr(250001)}, false},
		{"above max", Filter{MaxPrice: floatPtr(249999)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Matches(sampleListing()); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNilNumericFieldsFailRangePredicates(t *testing.T) {
	p := sampleListing()
	p.AreaSqm = nil
	p.RoomCount = nil
	p.BathroomCount = nil
	p.FloorNumber = nil

	tests := []struct {
		name string
		f    Filter
	}{
		{"min area", Filter{MinArea: floatPtr(10)}},
		{"max area", Filter{MaxArea: floatPtr(500)}},
		{"min rooms", Filter{MinRooms: intPtr(1)}},
		{"max rooms", Filter{MaxRooms: intPtr(10)}},
		{"min bathrooms", Filter{MinBathrooms: intPtr(1)}},
		{"max bathrooms", Filter{MaxBathrooms: intPtr(5)}},
		{"min floor", Filter{MinFloor: intPtr(0)}},
		{"max floor", Filter{MaxFloor: intPtr(20)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.f.Matches(p) {
				t.Error("listing without the field should fail the range check")
			}
		})
	}
}

func TestBathroomAndFloorAreIndependent(t *testing.T) {
	p := sampleListing() // 1 bathroom, floor 4

	f := Filter{MinBathrooms: intPtr(2)}
	if f.Matches(p) {
		t.Error("one bathroom should fail MinBathrooms=2")
	}

	f = Filter{MinBathrooms: intPtr(1), MinFloor: intPtr(5)}
	if f.Matches(p) {
		t.Error("floor 4 should fail MinFloor=5 even when bathrooms pass")
	}

	f = Filter{MinBathrooms: intPtr(1), MinFloor: intPtr(4)}
	if !f.Matches(p) {
		t.Error("both criteria on boundary should match")
	}
}

func TestStreetSubstringAndPostalCode(t *testing.T) {
	f := Filter{Street: "marszalkowska"}
	if !f.Matches(sampleListing()) {
		t.Error("street match should be a case-insensitive substring check")
	}

	f = Filter{Street: "pilsudskiego"}
	if f.Matches(sampleListing()) {
		t.Error("unrelated street should not match")
	}

	f = Filter{PostalCode: "00-001"}
	if !f.Matches(sampleListing()) {
		t.Error("exact postal code should match")
	}

	f = Filter{PostalCode: "00-0"}
	if f.Matches(sampleListing()) {
		t.Error("postal code is an exact match, not a prefix")
	}
}

func TestFreeTextSearchSpansTitleDescriptionCity(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"bright", true},   // title
		{"balcony", true},  // description
		{"warsaw", true},   // city
		{"APARTMENT", true},
		{"penthouse", false},
	}

	for _, tt := range tests {
		f := Filter{Search: tt.term}
		if got := f.Matches(sampleListing()); got != tt.want {
			t.Errorf("Search=%q: Matches() = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestCriteriaCombineWithAnd(t *testing.T) {
	f := NewFilter()
	f.City = "Warsaw"
	f.TransactionType = models.TransactionSale
	f.MinPrice = floatPtr(100000)
	f.MinRooms = intPtr(2)

	if !f.Matches(sampleListing()) {
		t.Fatal("listing satisfying every criterion should match")
	}

	// One failing criterion sinks the whole conjunction.
	f.MinRooms = intPtr(4)
	if f.Matches(sampleListing()) {
		t.Error("one failing criterion should reject the listing")
	}
}

func TestOwnerScoping(t *testing.T) {
	owner := uint(42)
	f := Filter{OwnerID: &owner}
	if !f.Matches(sampleListing()) {
		t.Error("owner's listing should match")
	}

	other := uint(7)
	f.OwnerID = &other
	if f.Matches(sampleListing()) {
		t.Error("another owner's filter should not match")
	}
}

func TestTransactionType(t *testing.T) {
	f := Filter{TransactionType: models.TransactionRent}
	if f.Matches(sampleListing()) {
		t.Error("SALE listing should not match a RENT filter")
	}

	f.TransactionType = models.TransactionSale
	if !f.Matches(sampleListing()) {
		t.Error("SALE listing should match a SALE filter")
	}
}
