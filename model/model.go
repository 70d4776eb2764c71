package model

import (
	"go-ml.dev/pkg/zorros/zorros"
	"gonum.org/v1/gonum/mat"
)

/*
HungryModel is an ML algorithm grows from a data to predict something
Needs to be fattened by Feed method to fit.
*/
type HungryModel interface {
	Feed(Dataset) FatModel
}

/*
FatModel is fattened model (a fitting function of model instance bounded to a dataset)
*/
type FatModel func() (PredictionModel, error)

/*
Fit a fattened (Fat) model
*/
func (f FatModel) Fit() (PredictionModel, error) {
	return f()
}

/*
LuckyFit fits fattened (Fat) model and trows any occurred errors as a panic
*/
func (f FatModel) LuckyFit() PredictionModel {
	m, err := f.Fit()
	if err != nil {
		panic(zorros.Panic(err))
	}
	return m
}

/*
PredictionModel is a predictor interface
*/
type PredictionModel interface {
	// Features model uses when predicts
	// the same as Names in the training dataset
	Features() []string
	// Predict returns a 0/1 label for every row of features
	Predict(features *mat.Dense) ([]int, error)
}

/*
Params is a set of hyper-parameters used to generate new model
*/
type Params map[string]float64

/*
Get value of the parameter by name if exists and dflt value otherwise
*/
func (p Params) Get(name string, dflt float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return dflt
}
