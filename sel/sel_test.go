package sel_test

import (
	"slices"
	"testing"

	"github.com/movable-go/movable/sel"
)

func TestMakeFilter(t *testing.T) {
	t.Parallel()

	t.Run("include", func(t *testing.T) {
		t.Parallel()

		allowed := map[int]bool{
			1: true,
			2: false,
			3: true,
			4: false,
		}

		isIncluded := sel.MakeFilter([]int{1, 3}, nil)

		for v, expected := range allowed {
			if got := isIncluded(v); got != expected {
				t.Errorf("%d: expected %v, got %v", v, expected, got)
			}
		}
	})

	t.Run("exclude", func(t *testing.T) {
		t.Parallel()

		allowed := map[int]bool{
			1: false,
			2: true,
			3: false,
			4: true,
		}

		isIncluded := sel.MakeFilter(nil, []int{1, 3})

		for v, expected := range allowed {
			if got := isIncluded(v); got != expected {
				t.Errorf("%d: expected %v, got %v", v, expected, got)
			}
		}
	})

	t.Run("include with exclude", func(t *testing.T) {
		t.Parallel()

		allowed := map[int]bool{
			1: true,
			2: false,
			3: false,
			4: false,
		}

		isIncluded := sel.MakeFilter([]int{1, 3}, []int{3})

		for v, expected := range allowed {
			if got := isIncluded(v); got != expected {
				t.Errorf("%d: expected %v, got %v", v, expected, got)
			}
		}
	})

	t.Run("empty allows all", func(t *testing.T) {
		t.Parallel()

		isIncluded := sel.MakeFilter[string](nil, nil)

		for _, v := range []string{"", "a", "b"} {
			if !isIncluded(v) {
				t.Errorf("%q: expected true", v)
			}
		}
	})
}

func TestFiltered(t *testing.T) {
	t.Parallel()

	got := slices.Collect(sel.Filtered(
		slices.Values([]int{6, 5, 4, 3, 2, 1}),
		func(v int) bool { return v%2 == 0 },
	))

	want := []int{6, 4, 2}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
