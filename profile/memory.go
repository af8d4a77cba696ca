package profile

// Memory is an in-memory Source. Rows are copied on Append and on Slice,
// so callers can mutate what they pass in or get back.
type Memory struct {
	m     int
	res   float64
	x     []float64
	ys    [][]float64
	ls    []int
	names []string
}

// NewMemory creates an empty dataset of row width m sampled at resolution.
func NewMemory(m int, resolution float64) (*Memory, error) {
	if m < 1 {
		return nil, ErrInvalidWidth
	}
	if err := checkResolution(resolution); err != nil {
		return nil, err
	}

	return &Memory{m: m, res: resolution, x: Grid(m, resolution)}, nil
}

// Append adds one profile. len(y) must equal M and 1 <= l <= M.
func (d *Memory) Append(y []float64, l int, name string) error {
	if len(y) != d.m {
		return ErrWidthMismatch
	}
	if l < 1 || l > d.m {
		return ErrInvalidLength
	}
	d.ys = append(d.ys, append([]float64(nil), y...))
	d.ls = append(d.ls, l)
	d.names = append(d.names, name)

	return nil
}

// AppendBatch appends every row of b.
func (d *Memory) AppendBatch(b Batch) error {
	if err := b.Validate(d.m); err != nil {
		return err
	}
	for i := range b.Ys {
		if err := d.Append(b.Ys[i], b.Ls[i], b.Names[i]); err != nil {
			return err
		}
	}

	return nil
}

// X returns the shared spatial grid.
func (d *Memory) X() []float64 { return d.x }

// Shape returns (N, M).
func (d *Memory) Shape() (int, int) { return len(d.ys), d.m }

// Resolution returns samples per unit length.
func (d *Memory) Resolution() float64 { return d.res }

// Slice returns a copy of profiles [start, end), end clamped to N.
func (d *Memory) Slice(start, end int) (Batch, error) {
	start, end, err := ClampRange(start, end, len(d.ys))
	if err != nil {
		return Batch{}, err
	}
	b := Batch{
		Ys:    make([][]float64, 0, end-start),
		Ls:    append([]int(nil), d.ls[start:end]...),
		Names: append([]string(nil), d.names[start:end]...),
	}
	for _, y := range d.ys[start:end] {
		b.Ys = append(b.Ys, append([]float64(nil), y...))
	}

	return b, nil
}

// ClampRange validates [start, end) against n and clamps end to n.
// Source implementations use it to share Slice semantics.
func ClampRange(start, end, n int) (int, int, error) {
	if start < 0 || end < start || start > n {
		return 0, 0, ErrRange
	}
	if end > n {
		end = n
	}

	return start, end, nil
}

// Lengths returns a copy of every valid length.
func (d *Memory) Lengths() ([]int, error) {
	return append([]int(nil), d.ls...), nil
}
