package store_test

import (
	"database/sql"
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/heavyedge/mean"
	"github.com/katalvlaran/heavyedge/profile"
	"github.com/katalvlaran/heavyedge/store"
)

// row returns a width-m profile with a plateau of height h that falls to 0
// at index l-1, padded with NaN.
func row(m, l int, h float64) []float64 {
	y := make([]float64, m)
	for i := range y {
		switch {
		case i < l/2:
			y[i] = h
		case i < l:
			y[i] = h * float64(l-1-i) / float64(l-1-l/2)
		default:
			y[i] = math.NaN()
		}
	}

	return y
}

func createFilled(t *testing.T, n, m int) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.db")
	s, err := store.Create(path, m, 2, "sample")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ys := make([][]float64, n)
	ls := make([]int, n)
	names := make([]string, n)
	for i := range ys {
		ls[i] = m/2 + i%(m/2)
		ys[i] = row(m, ls[i], 1+float64(i%3))
		names[i] = fmt.Sprintf("P%03d", i)
	}
	require.NoError(t, s.Append(ys, ls, names))

	return s, path
}

func TestCreate_Describe(t *testing.T) {
	s, _ := createFilled(t, 4, 20)

	assert.Equal(t, "sample", s.Name())
	_, err := uuid.Parse(s.ID())
	assert.NoError(t, err, "id is a UUID")
	n, m := s.Shape()
	assert.Equal(t, 4, n)
	assert.Equal(t, 20, m)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 2.0, s.Resolution())
	assert.Equal(t, 0.5, s.X()[1])
	assert.Len(t, s.X(), 20)

	v, err := s.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(2), v)
}

func TestReopen_RoundTrip(t *testing.T) {
	s, path := createFilled(t, 7, 16)
	want, err := s.Slice(0, 7)
	require.NoError(t, err)
	id := s.ID()
	require.NoError(t, s.Close())

	r, err := store.Open(path)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, id, r.ID())
	assert.Equal(t, "sample", r.Name())
	got, err := r.Slice(0, 100)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	ls, err := r.Lengths()
	require.NoError(t, err)
	assert.Equal(t, want.Ls, ls)

	names, err := r.Names()
	require.NoError(t, err)
	assert.Equal(t, want.Names, names)
}

func TestSlice_Ranges(t *testing.T) {
	s, _ := createFilled(t, 5, 8)

	b, err := s.Slice(3, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"P003", "P004"}, b.Names)

	b, err = s.Slice(5, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())

	_, err = s.Slice(-1, 2)
	assert.ErrorIs(t, err, profile.ErrRange)
	_, err = s.Slice(6, 7)
	assert.ErrorIs(t, err, profile.ErrRange)
}

func TestAppend_Validation(t *testing.T) {
	s, _ := createFilled(t, 1, 6)

	err := s.Append([][]float64{{1, 2, 3}}, []int{2}, []string{"short"})
	assert.ErrorIs(t, err, profile.ErrWidthMismatch)

	err = s.Append([][]float64{row(6, 3, 1)}, []int{7}, []string{"long"})
	assert.ErrorIs(t, err, profile.ErrInvalidLength)

	err = s.Append([][]float64{row(6, 3, 1)}, []int{3}, nil)
	assert.ErrorIs(t, err, profile.ErrBatchMismatch)

	assert.Equal(t, 1, s.Len(), "rejected appends write nothing")

	require.NoError(t, s.AppendBatch(profile.Batch{
		Ys: [][]float64{row(6, 4, 2)}, Ls: []int{4}, Names: []string{"ok"},
	}))
	assert.Equal(t, 2, s.Len())
}

func TestCreate_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := store.Create(filepath.Join(dir, "a.db"), 0, 1, "")
	assert.ErrorIs(t, err, profile.ErrInvalidWidth)
	_, err = store.Create(filepath.Join(dir, "b.db"), 4, 0, "")
	assert.ErrorIs(t, err, profile.ErrInvalidResolution)

	_, path := createFilled(t, 1, 8)
	_, err = store.Create(path, 4, 1, "")
	assert.ErrorIs(t, err, store.ErrExists)
}

func TestOpen_Errors(t *testing.T) {
	_, err := store.Open(filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorIs(t, err, store.ErrNotFound)

	// a SQLite file that never held a dataset
	path := filepath.Join(t.TempDir(), "blank.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE unrelated (v INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = store.Open(path)
	assert.ErrorIs(t, err, store.ErrSchema)
}

func TestSlice_CorruptRow(t *testing.T) {
	s, path := createFilled(t, 3, 8)
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE profiles SET data = ? WHERE idx = 1`, []byte("not snappy"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	r, err := store.Open(path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Slice(0, 1)
	assert.NoError(t, err)
	_, err = r.Slice(0, 3)
	assert.ErrorIs(t, err, store.ErrCorrupt)
}

// TestStore_AsSource streams the same profiles from a store and from
// memory through the mean engines.
func TestStore_AsSource(t *testing.T) {
	s, _ := createFilled(t, 9, 40)

	mem, err := profile.NewMemory(40, 2)
	require.NoError(t, err)
	all, err := s.Slice(0, s.Len())
	require.NoError(t, err)
	require.NoError(t, mem.AppendBatch(all))

	for _, size := range []int{0, 2, 4} {
		opt := profile.WithBatchSize(size)

		fs, ls, err := mean.Wasserstein(s, 200, opt)
		require.NoError(t, err)
		fm, lm, err := mean.Wasserstein(mem, 200, opt)
		require.NoError(t, err)
		assert.Equal(t, lm, ls)
		assert.Equal(t, fm, fs)

		es, err := mean.Euclidean(s, opt)
		require.NoError(t, err)
		em, err := mean.Euclidean(mem, opt)
		require.NoError(t, err)
		assert.Equal(t, em, es)
	}
}
