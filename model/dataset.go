package model

import (
	"go-ml.dev/pkg/shopping/fu"
	"golang.org/x/exp/rand"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/sampleuv"
	"math"
	"time"
)

/*
Dataset is a feature matrix with the parallel vector of binary labels.
Row i of Features corresponds to Labels[i].
*/
type Dataset struct {
	Features *mat.Dense // rows x len(Names), nil for an empty dataset
	Labels   []int      // 0 or 1 per row
	Names    []string   // feature names in column order
}

func (ds Dataset) Len() int {
	return len(ds.Labels)
}

func (ds Dataset) Width() int {
	return len(ds.Names)
}

/*
Validate checks the matrix shape agrees with labels and feature names
*/
func (ds Dataset) Validate() error {
	if ds.Features == nil {
		if ds.Len() != 0 {
			return xerrors.Errorf("%d labels without features: %w", ds.Len(), ErrShape)
		}
		return nil
	}
	r, c := ds.Features.Dims()
	if r != ds.Len() || c != ds.Width() {
		return xerrors.Errorf("features %dx%d do not fit %d labels of %d features: %w", r, c, ds.Len(), ds.Width(), ErrShape)
	}
	return nil
}

/*
Split randomly partitions the dataset into train and test subsets.
The test subset gets ceil(testSize*Len()) rows, zero seed means time based seed.
*/
func (ds Dataset) Split(testSize float64, seed int64) (train, test Dataset, err error) {
	if testSize <= 0 || testSize >= 1 {
		err = xerrors.Errorf("test size %v is out of (0,1): %w", testSize, ErrShape)
		return
	}
	n := ds.Len()
	nt := int(math.Ceil(testSize * float64(n)))
	if nt == 0 || nt >= n {
		err = xerrors.Errorf("%d rows is too few to split with test size %v: %w", n, testSize, ErrShape)
		return
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rows := make([]int, nt)
	sampleuv.WithoutReplacement(rows, n, rand.NewSource(uint64(seed)))
	held := make([]bool, n)
	for _, r := range rows {
		held[r] = true
	}
	rest := make([]int, 0, n-nt)
	for i, h := range held {
		if !h {
			rest = append(rest, i)
		}
	}
	return ds.subset(rest), ds.subset(rows), nil
}

// rows must be non-empty
func (ds Dataset) subset(rows []int) Dataset {
	f := mat.NewDense(len(rows), ds.Width(), nil)
	labels := make([]int, len(rows))
	for i, r := range rows {
		f.SetRow(i, ds.Features.RawRowView(r))
		labels[i] = ds.Labels[r]
	}
	return Dataset{Features: f, Labels: labels, Names: ds.Names}
}

/*
Positives returns the count of rows labeled 1
*/
func (ds Dataset) Positives() int {
	return fu.Count(ds.Labels, 1)
}
