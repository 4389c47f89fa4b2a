package tak

import (
	"reflect"
	"testing"
)

func TestMkDrops(t *testing.T) {
	cases := []struct {
		out uint32
		in  []int
	}{
		{
			0,
			nil,
		},
		{
			0x1,
			[]int{1},
		},
		{
			0x321,
			[]int{1, 2, 3},
		},
	}

	for _, tc := range cases {
		d := MkDrops(tc.in...)
		if uint32(d) != tc.out {
			t.Errorf("%v: got %x != %x", tc.in, d, tc.out)
		}

		var out []int
		for it := d.Iterator(); it.Ok(); it = it.Next() {
			out = append(out, it.Elem())
		}
		if !reflect.DeepEqual(out, tc.in) {
			t.Errorf("rt(%v) = %v", tc.in, out)
		}
		if !reflect.DeepEqual(d.Counts(), tc.in) {
			t.Errorf("Counts(%v) = %v", tc.in, d.Counts())
		}
	}
}

func TestDropsCarry(t *testing.T) {
	cases := []struct {
		in    Drops
		carry int
		ln    int
	}{
		{MkDrops(), 0, 0},
		{MkDrops(3), 3, 1},
		{MkDrops(1, 2, 1), 4, 3},
		{MkDrops(8, 8), 16, 2},
	}
	for _, tc := range cases {
		if c := tc.in.Carry(); c != tc.carry {
			t.Errorf("Carry(%x) = %d, want %d", uint32(tc.in), c, tc.carry)
		}
		if l := tc.in.Len(); l != tc.ln {
			t.Errorf("Len(%x) = %d, want %d", uint32(tc.in), l, tc.ln)
		}
	}
}

func TestCalculateDrops(t *testing.T) {
	// all compositions of totals 1..3
	got := calculateDrops(3)
	want := []Drops{
		MkDrops(1),
		MkDrops(1, 1),
		MkDrops(1, 1, 1),
		MkDrops(1, 2),
		MkDrops(2),
		MkDrops(2, 1),
		MkDrops(3),
	}
	if len(got) != len(want) {
		t.Fatalf("calculateDrops(3) = %v, want %v", got, want)
	}
	seen := make(map[Drops]bool)
	for _, d := range got {
		seen[d] = true
	}
	for _, d := range want {
		if !seen[d] {
			t.Errorf("calculateDrops(3) is missing %v", d.Counts())
		}
	}
}
