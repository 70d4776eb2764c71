package model

import (
	"golang.org/x/xerrors"
	"gotest.tools/assert"
	"math"
	"testing"
)

func Test_EvaluateHalf(t *testing.T) {
	sens, spec, err := Evaluate([]int{1, 1, 0, 0}, []int{1, 0, 0, 1})
	assert.NilError(t, err)
	assert.Equal(t, sens, .5)
	assert.Equal(t, spec, .5)
}

func Test_EvaluateSelf(t *testing.T) {
	for _, l := range [][]int{{1, 0}, {0, 0, 1}, {1, 1, 0, 1, 0, 0, 0}} {
		sens, spec, err := Evaluate(l, l)
		assert.NilError(t, err)
		assert.Equal(t, sens, 1.)
		assert.Equal(t, spec, 1.)
	}
}

func Test_EvaluateNoNegatives(t *testing.T) {
	sens, spec, err := Evaluate([]int{1, 1, 1}, []int{1, 1, 1})
	assert.Assert(t, xerrors.Is(err, ErrUndefinedRate))
	assert.Equal(t, sens, 1.)
	assert.Assert(t, math.IsNaN(spec))
}

func Test_EvaluateNoPositives(t *testing.T) {
	sens, spec, err := Evaluate([]int{0, 0, 0, 0}, []int{0, 1, 0, 0})
	assert.Assert(t, xerrors.Is(err, ErrUndefinedRate))
	assert.Assert(t, math.IsNaN(sens))
	assert.Equal(t, spec, .75)
}

func Test_EvaluateShape(t *testing.T) {
	_, _, err := Evaluate([]int{1, 0}, []int{1})
	assert.Assert(t, xerrors.Is(err, ErrShape))
	_, _, err = Evaluate([]int{1, 2}, []int{1, 0})
	assert.Assert(t, xerrors.Is(err, ErrShape))
}
