package pyrange

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSliceRange(t *testing.T) {
	vec := []int{1, 2, 3, 4, 5}

	cases := map[string]struct {
		r        Range[SliceIter[int]]
		expected []int
	}{
		"Forward":     {r: Over(Begin(vec), End(vec)), expected: []int{1, 2, 3, 4, 5}},
		"Reverse":     {r: Over(RBegin(vec), REnd(vec)), expected: []int{5, 4, 3, 2, 1}},
		"Step":        {r: OverStep(Begin(vec), End(vec), 2), expected: []int{1, 3, 5}},
		"UnitStep":    {r: OverStep(Begin(vec), End(vec), 1), expected: []int{1, 2, 3, 4, 5}},
		"BackStep":    {r: OverStep(At(vec, len(vec)-1), At(vec, 0), -2), expected: []int{5, 3}},
		"BackUnit":    {r: OverStep(At(vec, 3), At(vec, 0), -1), expected: []int{4, 3, 2}},
		"ReverseStep": {r: OverStep(RBegin(vec), REnd(vec), 3), expected: []int{5, 2}},
		"Empty":       {r: Over(At(vec, 2), At(vec, 2)), expected: []int{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got []int
			for it := range tc.r.All() {
				got = append(got, it.Value())
			}
			if diff := cmp.Diff(tc.expected, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestSlicePtr(t *testing.T) {
	vec := []int{1, 2, 3, 4, 5}
	for p := range OverStep(Begin(vec), End(vec), 2).All() {
		*p.Ptr() *= 10
	}
	if diff := cmp.Diff([]int{10, 2, 30, 4, 50}, vec); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
}
