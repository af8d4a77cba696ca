package profile

// LengthSource is implemented by sources that can list every valid length
// without reading the profile rows.
type LengthSource interface {
	Lengths() ([]int, error)
}

// Lengths returns the valid length of every profile of src, in order.
// It uses LengthSource when available and otherwise scans src in batches.
func Lengths(src Source, opts ...Option) ([]int, error) {
	if ls, ok := src.(LengthSource); ok {
		return ls.Lengths()
	}

	n, _ := src.Shape()
	out := make([]int, 0, n)
	err := Batches(src, func(b Batch) error {
		out = append(out, b.Ls...)

		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}
