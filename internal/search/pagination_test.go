package search

import "testing"

func intPtr(v int) *int { return &v }

func TestValidatePageSize(t *testing.T) {
	tests := []struct {
		name string
		in   *int
		want int
	}{
		{"nil falls back to default", nil, DefaultPageSize},
		{"zero falls back to default", intPtr(0), DefaultPageSize},
		{"negative falls back to default", intPtr(-5), DefaultPageSize},
		{"minimum is kept", intPtr(1), 1},
		{"in range is kept", intPtr(35), 35},
		{"maximum is kept", intPtr(50), 50},
		{"over maximum clamps to 50", intPtr(51), 50},
		{"far over maximum clamps to 50", intPtr(10000), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePageSize(tt.in); got != tt.want {
				t.Errorf("ValidatePageSize(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidatePageNumber(t *testing.T) {
	tests := []struct {
		name string
		in   *int
		want int
	}{
		{"nil falls back to zero", nil, 0},
		{"negative falls back to zero", intPtr(-1), 0},
		{"zero is kept", intPtr(0), 0},
		{"positive is kept", intPtr(7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePageNumber(tt.in); got != tt.want {
				t.Errorf("ValidatePageNumber(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateSortDirection(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ASC", SortAsc},
		{"asc", SortAsc},
		{"Asc", SortAsc},
		{"DESC", SortDesc},
		{"desc", SortDesc},
		{"", SortDesc},
		{"ascending", SortDesc},
		{"garbage", SortDesc},
	}

	for _, tt := range tests {
		if got := ValidateSortDirection(tt.in); got != tt.want {
			t.Errorf("ValidateSortDirection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"price", "price"},
		{"PRICE", "price"},
		{"createdAt", "createdAt"},
		{"created_at", "createdAt"},
		{"updatedAt", "updatedAt"},
		{"updated_at", "updatedAt"},
		{"city", "city"},
		{"areaSqm", "areaSqm"},
		{"area", "areaSqm"},
		{"roomCount", "roomCount"},
		{"rooms", "roomCount"},
		{"title", "title"},
		{"", DefaultSortField},
		{"owner_id", DefaultSortField},
		{"password", DefaultSortField},
		{"price; DROP TABLE properties", DefaultSortField},
	}

	for _, tt := range tests {
		if got := ValidateSortField(tt.in); got != tt.want {
			t.Errorf("ValidateSortField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSortColumn(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"price", "price"},
		{"createdAt", "created_at"},
		{"updatedAt", "updated_at"},
		{"areaSqm", "area_sqm"},
		{"roomCount", "room_count"},
		{"nonsense", "created_at"},
	}

	for _, tt := range tests {
		if got := SortColumn(tt.field); got != tt.want {
			t.Errorf("SortColumn(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestNewPageRequest(t *testing.T) {
	req := NewPageRequest(intPtr(3), intPtr(100), "rooms", "asc")

	if req.Page != 3 {
		t.Errorf("Page = %d, want 3", req.Page)
	}
	if req.Size != MaxPageSize {
		t.Errorf("Size = %d, want %d", req.Size, MaxPageSize)
	}
	if req.SortBy != "roomCount" {
		t.Errorf("SortBy = %q, want roomCount", req.SortBy)
	}
	if req.Direction != SortAsc {
		t.Errorf("Direction = %q, want ASC", req.Direction)
	}
	if req.Offset() != 3*MaxPageSize {
		t.Errorf("Offset() = %d, want %d", req.Offset(), 3*MaxPageSize)
	}

	defaults := NewPageRequest(nil, nil, "", "")
	if defaults.Page != 0 || defaults.Size != DefaultPageSize {
		t.Errorf("defaults = page %d size %d, want page 0 size %d", defaults.Page, defaults.Size, DefaultPageSize)
	}
	if defaults.SortBy != DefaultSortField || defaults.Direction != SortDesc {
		t.Errorf("defaults = sort %q %q, want %q DESC", defaults.SortBy, defaults.Direction, DefaultSortField)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{41, 20, 3},
		{100, 50, 2},
		{5, 0, 1},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}
