package colorfilter

// TableSize is the number of entries in a channel lookup table.
const TableSize = 256

// TableFilter maps each channel through its own 256-entry lookup table.
// A channel without a table passes through unchanged.
type TableFilter struct {
	a, r, g, b *[TableSize]byte
}

// NewTableFilter returns a filter that maps all four channels, alpha
// included, through the same table. table must hold exactly 256 bytes.
func NewTableFilter(table []byte) (*TableFilter, error) {
	t, err := copyTable("NewTableFilter", "table", table)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, missingArgument("NewTableFilter", "table")
	}
	return &TableFilter{a: t, r: t, g: t, b: t}, nil
}

// NewTableFilterARGB returns a filter with one table per channel. Any table
// may be nil to leave its channel unchanged; a non-nil table must hold
// exactly 256 bytes. Tables are copied.
func NewTableFilterARGB(tableA, tableR, tableG, tableB []byte) (*TableFilter, error) {
	const op = "NewTableFilterARGB"
	var f TableFilter
	var err error
	if f.a, err = copyTable(op, "tableA", tableA); err != nil {
		return nil, err
	}
	if f.r, err = copyTable(op, "tableR", tableR); err != nil {
		return nil, err
	}
	if f.g, err = copyTable(op, "tableG", tableG); err != nil {
		return nil, err
	}
	if f.b, err = copyTable(op, "tableB", tableB); err != nil {
		return nil, err
	}
	return &f, nil
}

func copyTable(op, arg string, src []byte) (*[TableSize]byte, error) {
	if src == nil {
		return nil, nil
	}
	if len(src) != TableSize {
		return nil, lengthMismatch(op, arg, TableSize, len(src))
	}
	t := new([TableSize]byte)
	copy(t[:], src)
	return t, nil
}

// TableA returns a copy of the alpha table, or nil if alpha is unmapped.
func (f *TableFilter) TableA() []byte { return tableSlice(f.a) }

// TableR returns a copy of the red table, or nil if red is unmapped.
func (f *TableFilter) TableR() []byte { return tableSlice(f.r) }

// TableG returns a copy of the green table, or nil if green is unmapped.
func (f *TableFilter) TableG() []byte { return tableSlice(f.g) }

// TableB returns a copy of the blue table, or nil if blue is unmapped.
func (f *TableFilter) TableB() []byte { return tableSlice(f.b) }

func tableSlice(t *[TableSize]byte) []byte {
	if t == nil {
		return nil
	}
	return append([]byte(nil), t[:]...)
}

func (f *TableFilter) Kind() Kind { return KindTable }

func (f *TableFilter) Apply(c RGBA8) RGBA8 {
	return RGBA8{
		R: lookup(f.r, c.R),
		G: lookup(f.g, c.G),
		B: lookup(f.b, c.B),
		A: lookup(f.a, c.A),
	}
}

func lookup(t *[TableSize]byte, v uint8) uint8 {
	if t == nil {
		return v
	}
	return t[v]
}

func (*TableFilter) sealed() {}
