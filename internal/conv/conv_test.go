package conv

import (
	"math"
	"testing"
)

func TestIntToInt32Valid(t *testing.T) {
	cases := []int{0, 1, -1, math.MaxInt32, math.MinInt32}
	for _, n := range cases {
		if got := IntToInt32(n); int(got) != n {
			t.Fatalf("IntToInt32(%d) = %d", n, got)
		}
	}
}

func TestIntToInt32PanicsOnOverflow(t *testing.T) {
	cases := []int{math.MaxInt32 + 1, math.MinInt32 - 1}
	for _, n := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("IntToInt32(%d) did not panic", n)
				}
			}()
			IntToInt32(n)
		}()
	}
}
