/*
Package knn implements k-nearest-neighbor classifier over golearn
*/
package knn

import (
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/knn"
	"go-ml.dev/pkg/shopping/fu"
	"go-ml.dev/pkg/shopping/model"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
	"strconv"
)

const (
	DefaultNeighbors = 1
	DefaultDistance  = "euclidean"
)

// class attribute name in golearn instances
const classAttr = "Label"

/*
Model is a k-nearest-neighbor classifier definition.

Only euclidean distance runs the optimised golearn path; manhattan and cosine
print golearn progress to stdout while predicting. With an even count of
neighbors golearn breaks voting ties in map order, so predictions may differ
between runs on the same split.
*/
type Model struct {
	Neighbors int    // count of voting neighbors, DefaultNeighbors if zero
	Distance  string // euclidean, manhattan or cosine, DefaultDistance if empty
}

/*
New creates model from hyper-parameters, the known one is `neighbors`
*/
func New(p model.Params) Model {
	return Model{Neighbors: int(p.Get("neighbors", DefaultNeighbors))}
}

func (m Model) Feed(ds model.Dataset) model.FatModel {
	return func() (model.PredictionModel, error) {
		return m.fit(ds)
	}
}

func (m Model) fit(ds model.Dataset) (model.PredictionModel, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if ds.Len() == 0 {
		return nil, xerrors.Errorf("nothing to fit: %w", model.ErrShape)
	}
	distance := m.Distance
	if distance == "" {
		distance = DefaultDistance
	}
	k := fu.Fnzi(m.Neighbors, DefaultNeighbors)
	if k < 1 || k > ds.Len() {
		return nil, xerrors.Errorf("%d neighbors for %d training rows: %w", k, ds.Len(), model.ErrShape)
	}
	cls := knn.NewKnnClassifier(distance, "linear", k)
	train, err := instances(ds.Names, ds.Features, ds.Labels)
	if err != nil {
		return nil, err
	}
	if err = cls.Fit(train); err != nil {
		return nil, zorros.Wrapf(err, "knn fit failed: %v", err.Error())
	}
	return &PredictionModel{names: ds.Names, cls: cls}, nil
}

/*
PredictionModel is a fitted knn classifier
*/
type PredictionModel struct {
	names []string
	cls   *knn.KNNClassifier
}

func (pm *PredictionModel) Features() []string {
	return pm.names
}

/*
Predict returns the majority label of the nearest training rows for every row of features
*/
func (pm *PredictionModel) Predict(features *mat.Dense) ([]int, error) {
	r, c := features.Dims()
	if c != len(pm.names) {
		return nil, xerrors.Errorf("%d features given, model uses %d: %w", c, len(pm.names), model.ErrShape)
	}
	test, err := instances(pm.names, features, make([]int, r))
	if err != nil {
		return nil, err
	}
	pred, err := pm.cls.Predict(test)
	if err != nil {
		return nil, zorros.Wrapf(err, "knn predict failed: %v", err.Error())
	}
	labels := make([]int, r)
	for i := range labels {
		if labels[i], err = strconv.Atoi(base.GetClass(pred, i)); err != nil {
			return nil, zorros.Trace(err)
		}
	}
	return labels, nil
}

// instances packs features and labels into golearn dense instances with categorical 0/1 class
func instances(names []string, features *mat.Dense, labels []int) (*base.DenseInstances, error) {
	rows, cols := features.Dims()
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, cols)
	for j := range specs {
		specs[j] = inst.AddAttribute(base.NewFloatAttribute(names[j]))
	}
	class := base.NewCategoricalAttribute()
	class.SetName(classAttr)
	// fixed value order keeps train and test attributes compatible
	class.GetSysValFromString("0")
	class.GetSysValFromString("1")
	classSpec := inst.AddAttribute(class)
	if err := inst.AddClassAttribute(class); err != nil {
		return nil, zorros.Trace(err)
	}
	if err := inst.Extend(rows); err != nil {
		return nil, zorros.Trace(err)
	}
	for i := 0; i < rows; i++ {
		for j, s := range specs {
			inst.Set(s, i, base.PackFloatToBytes(features.At(i, j)))
		}
		inst.Set(classSpec, i, class.GetSysValFromString(strconv.Itoa(labels[i])))
	}
	return inst, nil
}
