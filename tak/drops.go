package tak

// Drops is a packed sequence of spread drop counts, essentially a
// [8]uint4. The first drop is stored in (d&0xf), the second in
// (d&0xf0), and so on, ordered outward from the origin square.
type Drops uint32

func MkDrops(counts ...int) Drops {
	var out Drops
	for i := len(counts) - 1; i >= 0; i-- {
		if counts[i] > 8 {
			panic("bad drop count")
		}
		out = out.Prepend(counts[i])
	}
	return out
}

func (d Drops) Len() int {
	l := 0
	for d != 0 {
		l++
		d >>= 4
	}
	return l
}

func (d Drops) Empty() bool {
	return d == 0
}

func (d Drops) First() int {
	return int(d & 0xf)
}

// Carry returns the total number of pieces lifted by the spread.
func (d Drops) Carry() int {
	n := 0
	for it := d.Iterator(); it.Ok(); it = it.Next() {
		n += it.Elem()
	}
	return n
}

func (d Drops) Prepend(next int) Drops {
	return (d << 4) | Drops(next)
}

// Counts unpacks the drop sequence. It allocates; move application
// iterates instead.
func (d Drops) Counts() []int {
	var out []int
	for it := d.Iterator(); it.Ok(); it = it.Next() {
		out = append(out, it.Elem())
	}
	return out
}

type DropsIterator uint32

func (d Drops) Iterator() DropsIterator {
	return DropsIterator(d)
}

func (i DropsIterator) Next() DropsIterator {
	return i >> 4
}

func (i DropsIterator) Ok() bool {
	return i != 0
}

func (i DropsIterator) Elem() int {
	return int(i & 0xf)
}
