package model

import (
	"go-ml.dev/pkg/shopping/fu"
	"golang.org/x/xerrors"
)

/*
Evaluate compares actual labels with predicted ones and returns
the true positive rate (sensitivity) and the true negative rate (specificity).

When labels have no positives or no negatives the related rate is NaN
and the error wraps ErrUndefinedRate; the other rate is still valid.
*/
func Evaluate(labels, predictions []int) (sensitivity, specificity float64, err error) {
	if len(labels) != len(predictions) {
		err = xerrors.Errorf("%d labels vs %d predictions: %w", len(labels), len(predictions), ErrShape)
		return
	}
	var p, n, tp, tn int
	for i, l := range labels {
		switch l {
		case 1:
			p++
			if predictions[i] == 1 {
				tp++
			}
		case 0:
			n++
			if predictions[i] == 0 {
				tn++
			}
		default:
			err = xerrors.Errorf("label %d at row %d is not binary: %w", l, i, ErrShape)
			return
		}
	}
	sensitivity, specificity = fu.Ratio(tp, p), fu.Ratio(tn, n)
	if p == 0 || n == 0 {
		err = xerrors.Errorf("%d positives and %d negatives: %w", p, n, ErrUndefinedRate)
	}
	return
}
