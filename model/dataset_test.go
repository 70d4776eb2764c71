package model

import (
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
	"gotest.tools/assert"
	"testing"
)

// row i has features (i, -i) and label i%2
func sequence(n int) Dataset {
	data := make([]float64, 0, n*2)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		data = append(data, float64(i), float64(-i))
		labels[i] = i % 2
	}
	return Dataset{Features: mat.NewDense(n, 2, data), Labels: labels, Names: []string{"A", "B"}}
}

func Test_Validate(t *testing.T) {
	assert.NilError(t, sequence(5).Validate())
	assert.NilError(t, Dataset{Names: []string{"A"}}.Validate())
	ds := sequence(5)
	ds.Labels = ds.Labels[:4]
	assert.Assert(t, xerrors.Is(ds.Validate(), ErrShape))
	assert.Assert(t, xerrors.Is(Dataset{Labels: []int{1}}.Validate(), ErrShape))
}

func Test_Split(t *testing.T) {
	ds := sequence(10)
	train, test, err := ds.Split(.4, 42)
	assert.NilError(t, err)
	assert.Equal(t, test.Len(), 4)
	assert.Equal(t, train.Len(), 6)
	assert.NilError(t, train.Validate())
	assert.NilError(t, test.Validate())

	seen := map[int]bool{}
	for _, s := range []Dataset{train, test} {
		for i := 0; i < s.Len(); i++ {
			x := int(s.Features.At(i, 0))
			assert.Assert(t, !seen[x])
			seen[x] = true
			assert.Equal(t, s.Features.At(i, 1), float64(-x))
			assert.Equal(t, s.Labels[i], x%2)
		}
	}
	assert.Equal(t, len(seen), 10)
}

func Test_SplitCeil(t *testing.T) {
	_, test, err := sequence(11).Split(.4, 1)
	assert.NilError(t, err)
	assert.Equal(t, test.Len(), 5)
}

func Test_SplitSeed(t *testing.T) {
	_, a, err := sequence(20).Split(.5, 7)
	assert.NilError(t, err)
	_, b, err := sequence(20).Split(.5, 7)
	assert.NilError(t, err)
	assert.DeepEqual(t, a.Labels, b.Labels)
	assert.Assert(t, mat.Equal(a.Features, b.Features))
}

func Test_SplitBad(t *testing.T) {
	_, _, err := sequence(10).Split(0, 1)
	assert.Assert(t, xerrors.Is(err, ErrShape))
	_, _, err = sequence(10).Split(1, 1)
	assert.Assert(t, xerrors.Is(err, ErrShape))
	_, _, err = sequence(1).Split(.4, 1)
	assert.Assert(t, xerrors.Is(err, ErrShape))
}

func Test_Positives(t *testing.T) {
	assert.Equal(t, sequence(7).Positives(), 3)
}

func Test_SplitComplement(t *testing.T) {
	train, test, err := sequence(30).Split(.3, 9)
	assert.NilError(t, err)
	assert.Equal(t, test.Len(), 9)
	for i := 1; i < train.Len(); i++ {
		assert.Assert(t, train.Features.At(i-1, 0) < train.Features.At(i, 0))
	}
}
