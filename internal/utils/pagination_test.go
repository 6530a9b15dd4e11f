package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		s    string
		def  int
		want int
	}{
		// empty -> default
		{"", 10, 10},
		// valid ints
		{"42", 0, 42},
		{"-13", 1, -13},
		{"0012", 99, 12},
		// invalid -> default (no trim)
		{"x", 5, 5},
		{" 42", 7, 7},
		// overflow -> default
		{"999999999999999999999999", -1, -1},
	}

	for _, tc := range cases {
		if got := AtoiDefault(tc.s, tc.def); got != tc.want {
			t.Fatalf("AtoiDefault(%q, %d) = %d; want %d", tc.s, tc.def, got, tc.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, size         string
		wantPage, wantSize int
	}{
		{"", "", DefaultPage, DefaultPageSize},
		{"3", "10", 3, 10},
		{"0", "0", 1, 1},
		{"-2", "-5", 1, 1},
		{"x", "y", DefaultPage, DefaultPageSize},
		{"1", "1000", 1, MaxPageSize},
	}
	for _, tc := range cases {
		p, s := ClampPage(tc.page, tc.size)
		if p != tc.wantPage || s != tc.wantSize {
			t.Fatalf("ClampPage(%q, %q) = (%d, %d); want (%d, %d)", tc.page, tc.size, p, s, tc.wantPage, tc.wantSize)
		}
	}
}

func TestPaginate(t *testing.T) {
	got := Paginate(2, 20, 45)
	want := Pagination{Page: 2, PageSize: 20, Total: 45, TotalPages: 3, HasNext: true}
	if got != want {
		t.Fatalf("Paginate = %+v; want %+v", got, want)
	}

	if got := Paginate(3, 20, 45); got.HasNext {
		t.Fatalf("last page reports HasNext: %+v", got)
	}
	if got := Paginate(1, 20, 0); got.TotalPages != 0 || got.HasNext {
		t.Fatalf("empty listing = %+v", got)
	}
	if got := Paginate(1, 0, 5); got.PageSize != 1 || got.TotalPages != 5 {
		t.Fatalf("zero page size = %+v", got)
	}
}
