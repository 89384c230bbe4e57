package property

import (
	"testing"

	"property-listings-api/internal/models"
	"property-listings-api/internal/search"
)

func TestBuildAddress(t *testing.T) {
	tests := []struct {
		name     string
		property models.Property
		want     string
		wantNil  bool
	}{
		{
			name:     "all parts",
			property: models.Property{Street: "Marszalkowska 10", City: "Warsaw", PostalCode: "00-001"},
			want:     "Marszalkowska 10, Warsaw, 00-001",
		},
		{
			name:     "no postal code",
			property: models.Property{Street: "Marszalkowska 10", City: "Warsaw"},
			want:     "Marszalkowska 10, Warsaw",
		},
		{
			name:     "city only",
			property: models.Property{City: "Warsaw"},
			want:     "Warsaw",
		},
		{
			name:     "street only",
			property: models.Property{Street: "Marszalkowska 10"},
			want:     "Marszalkowska 10",
		},
		{
			name:     "postal code alone is not an address",
			property: models.Property{PostalCode: "00-001"},
			wantNil:  true,
		},
		{
			name:     "nothing set",
			property: models.Property{},
			wantNil:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAddress(&tt.property)
			if tt.wantNil {
				if got != nil {
					t.Errorf("BuildAddress() = %q, want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("BuildAddress() = nil, want %q", tt.want)
			}
			if *got != tt.want {
				t.Errorf("BuildAddress() = %q, want %q", *got, tt.want)
			}
		})
	}
}

func TestToResponseImageOrder(t *testing.T) {
	p := &models.Property{
		ID:    1,
		Title: "Sunny loft in the old town",
		City:  "Warsaw",
		Images: []models.PropertyImage{
			{FileUrl: "http://localhost:8080/uploads/properties/c.jpg", DisplayOrder: 2},
			{FileUrl: "http://localhost:8080/uploads/properties/a.jpg", DisplayOrder: 0},
			{FileUrl: "http://localhost:8080/uploads/properties/b.jpg", DisplayOrder: 1},
		},
	}

	resp := ToResponse(p)

	want := []string{
		"http://localhost:8080/uploads/properties/a.jpg",
		"http://localhost:8080/uploads/properties/b.jpg",
		"http://localhost:8080/uploads/properties/c.jpg",
	}
	if len(resp.ImageURLs) != len(want) {
		t.Fatalf("ImageURLs has %d entries, want %d", len(resp.ImageURLs), len(want))
	}
	for i := range want {
		if resp.ImageURLs[i] != want[i] {
			t.Errorf("ImageURLs[%d] = %q, want %q", i, resp.ImageURLs[i], want[i])
		}
	}
}

func TestToResponseWithoutImages(t *testing.T) {
	resp := ToResponse(&models.Property{ID: 1, Title: "Sunny loft in the old town"})
	if resp.ImageURLs == nil {
		t.Error("ImageURLs should serialize as an empty array, not null")
	}
	if len(resp.ImageURLs) != 0 {
		t.Errorf("ImageURLs has %d entries, want 0", len(resp.ImageURLs))
	}
	if resp.Owner != nil {
		t.Error("Owner should be omitted when not preloaded")
	}
}

func TestNewPagedResponseMetadata(t *testing.T) {
	req := search.PageRequest{Page: 2, Size: 20, SortBy: "createdAt", Direction: "DESC"}

	page := NewPagedResponse(nil, 41, req)

	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
	if page.First {
		t.Error("page 2 should not be first")
	}
	if !page.Last {
		t.Error("page 2 of 3 should be last")
	}
	if page.Content == nil {
		t.Error("Content should serialize as an empty array, not null")
	}

	empty := NewPagedResponse(nil, 0, search.PageRequest{Page: 0, Size: 20})
	if empty.TotalPages != 1 {
		t.Errorf("empty result TotalPages = %d, want 1", empty.TotalPages)
	}
	if !empty.First || !empty.Last {
		t.Error("the single empty page should be both first and last")
	}
}
