package grid

import "testing"

func TestLastPageFor(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
		{100, 10, 10},
		{3, 0, 1}, // degenerate page size
	}
	for _, c := range cases {
		if got := lastPageFor(c.total, c.pageSize); got != c.want {
			t.Errorf("lastPageFor(%d, %d) = %d, want %d", c.total, c.pageSize, got, c.want)
		}
	}
}

func TestLinkWindow(t *testing.T) {
	cases := []struct {
		name                 string
		current, width, last int
		wantFirst, wantLast  int
	}{
		{"CenteredMid", 5, 5, 10, 3, 7},
		{"LeftClamp", 1, 5, 10, 1, 5},
		{"NearLeft", 2, 5, 10, 1, 5},
		{"RightClamp", 10, 5, 10, 8, 10},
		{"FewPages", 1, 5, 2, 1, 2},
		{"SinglePage", 1, 5, 1, 1, 1},
		{"WidthOne", 4, 1, 10, 4, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			first, last := linkWindow(c.current, c.width, c.last)
			if first != c.wantFirst || last != c.wantLast {
				t.Errorf("linkWindow(%d, %d, %d) = (%d, %d), want (%d, %d)",
					c.current, c.width, c.last, first, last, c.wantFirst, c.wantLast)
			}
		})
	}
}

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("FirstPage", func(t *testing.T) {
		got := pageSlice(items, 1, 3)
		if len(got) != 3 || got[0] != 1 || got[2] != 3 {
			t.Errorf("got %v", got)
		}
	})

	t.Run("PartialLastPage", func(t *testing.T) {
		got := pageSlice(items, 3, 3)
		if len(got) != 1 || got[0] != 7 {
			t.Errorf("got %v", got)
		}
	})

	t.Run("BeyondEnd", func(t *testing.T) {
		if got := pageSlice(items, 4, 3); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := pageSlice([]int(nil), 1, 3); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}
