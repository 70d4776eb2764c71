package model

import (
	"fmt"
	"go-ml.dev/pkg/shopping/fu"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"io"
)

/*
Training is the default split-fit-evaluate pipeline
*/
type Training struct {
	TestSize float64      // share of rows held out for testing, DefaultTestSize if zero
	Seed     int64        // split seed, random if zero
	Verbose  func(string) // progress printer
}

const DefaultTestSize = 0.4

/*
Report is an evaluation report of the fitted model on the test subset
*/
type Report struct {
	Train, Test              int // subset sizes
	Correct, Incorrect       int // predictions on the test subset
	Sensitivity, Specificity float64
}

/*
Run splits dataset, fits model on the train subset and evaluates it on the test subset.
If the test subset misses a class the report is returned together with the ErrUndefinedRate error.
*/
func (t Training) Run(ds Dataset, m HungryModel) (report *Report, err error) {
	if err = ds.Validate(); err != nil {
		return
	}
	train, test, err := ds.Split(fu.Fnzf(t.TestSize, DefaultTestSize), t.Seed)
	if err != nil {
		return
	}
	t.verbose(fmt.Sprintf("split %d rows: %d train (%d positive), %d test (%d positive)",
		ds.Len(), train.Len(), train.Positives(), test.Len(), test.Positives()))

	pm, err := m.Feed(train).Fit()
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to fit model: %v", err.Error())
	}
	t.verbose("model is fitted")

	predictions, err := pm.Predict(test.Features)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to predict: %v", err.Error())
	}
	if len(predictions) != test.Len() {
		return nil, xerrors.Errorf("%d predictions for %d rows: %w", len(predictions), test.Len(), ErrShape)
	}
	correct := fu.Matches(test.Labels, predictions)
	report = &Report{
		Train:     train.Len(),
		Test:      test.Len(),
		Correct:   correct,
		Incorrect: test.Len() - correct,
	}
	report.Sensitivity, report.Specificity, err = Evaluate(test.Labels, predictions)
	t.verbose(fmt.Sprintf("sensitivity: %.5f, specificity: %.5f", report.Sensitivity, report.Specificity))
	return
}

/*
LuckyRun runs training and trows any occurred errors as a panic
*/
func (t Training) LuckyRun(ds Dataset, m HungryModel) *Report {
	r, err := t.Run(ds, m)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}

func (t Training) verbose(s string) {
	if t.Verbose != nil {
		t.Verbose(s)
	}
}

/*
WriteTo prints the report as four lines: correct and incorrect counts,
true positive and true negative rates in percents
*/
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Correct: %d\nIncorrect: %d\nTrue Positive Rate: %.2f%%\nTrue Negative Rate: %.2f%%\n",
		r.Correct, r.Incorrect, 100*r.Sensitivity, 100*r.Specificity)
	return int64(n), err
}
