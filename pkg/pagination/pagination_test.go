package pagination

import (
	"reflect"
	"testing"
)

func TestNewMeta(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		pageSize  int
		total     int
		wantCount int
	}{
		{"exact pages", 1, 12, 24, 2},
		{"partial last page", 1, 12, 25, 3},
		{"single short page", 1, 12, 8, 1},
		{"empty set", 1, 12, 0, 0},
		{"defaults applied", 0, 0, 30, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewMeta(tc.page, tc.pageSize, tc.total)
			if meta.PageCount != tc.wantCount {
				t.Fatalf("expected pageCount %d got %d", tc.wantCount, meta.PageCount)
			}
			if meta.Total != tc.total {
				t.Fatalf("expected total %d got %d", tc.total, meta.Total)
			}
			if meta.Page < 1 || meta.PageSize < 1 {
				t.Fatalf("meta not normalized: %+v", meta)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	page := Paginate(items, 1, 3)
	if !reflect.DeepEqual(page, []int{1, 2, 3}) {
		t.Fatalf("unexpected first page %v", page)
	}

	page = Paginate(items, 3, 3)
	if !reflect.DeepEqual(page, []int{7, 8}) {
		t.Fatalf("unexpected last page %v", page)
	}

	page = Paginate(items, 4, 3)
	if page == nil || len(page) != 0 {
		t.Fatalf("expected empty non-nil slice past the end, got %v", page)
	}

	page = Paginate(items, 0, 0)
	if len(page) != len(items) {
		t.Fatalf("expected defaults to cover all items, got %v", page)
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"no pages", 1, 0, nil},
		{"fewer pages than window", 2, 3, []int{1, 2, 3}},
		{"pinned to start", 1, 10, []int{1, 2, 3, 4}},
		{"still pinned at three", 3, 10, []int{1, 2, 3, 4}},
		{"middle drifts", 5, 10, []int{4, 5, 6, 7}},
		{"pinned to end", 10, 10, []int{7, 8, 9, 10}},
		{"near end", 8, 10, []int{7, 8, 9, 10}},
		{"zero current normalized", 0, 10, []int{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Window(tc.current, tc.total)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Window(%d, %d) = %v, want %v", tc.current, tc.total, got, tc.want)
			}
		})
	}
}
