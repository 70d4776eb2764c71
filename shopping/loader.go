/*
Package shopping loads online shoppers sessions into a dataset
predicting whether a session ends with a purchase
*/
package shopping

import (
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/shopping/model"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

/*
Load reads all session records from the source and converts them into a dataset.
Nothing is returned unless every row converts.
*/
func Load(src Source) (model.Dataset, error) {
	df, err := src.Frame()
	if err != nil {
		return model.Dataset{}, err
	}
	return Convert(df)
}

/*
LuckyLoad loads dataset and trows any occurred errors as a panic
*/
func LuckyLoad(src Source) model.Dataset {
	ds, err := Load(src)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return ds
}

/*
Convert maps frame columns to the feature matrix and Revenue column to labels.
Columns are accessed by name, so extra columns are ignored.
*/
func Convert(df dataframe.DataFrame) (model.Dataset, error) {
	if df.Err != nil {
		return model.Dataset{}, xerrors.Errorf("malformed table: %v: %w", df.Err, model.ErrParse)
	}
	cols := make([][]string, len(Features))
	for j, name := range Features {
		c, err := column(df, name)
		if err != nil {
			return model.Dataset{}, err
		}
		cols[j] = c
	}
	revenue, err := column(df, Label)
	if err != nil {
		return model.Dataset{}, err
	}

	n, w := df.Nrow(), len(Features)
	if n == 0 {
		return model.Dataset{}, xerrors.Errorf("table has no rows: %w", model.ErrParse)
	}
	data := make([]float64, n*w)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		for j, name := range Features {
			v, err := converters[name](cols[j][i])
			if err != nil {
				return model.Dataset{}, xerrors.Errorf("row %d, column %v: %w", i+1, name, err)
			}
			data[i*w+j] = v
		}
		if labels[i], err = Revenue(revenue[i]); err != nil {
			return model.Dataset{}, xerrors.Errorf("row %d, column %v: %w", i+1, Label, err)
		}
	}
	return model.Dataset{Features: mat.NewDense(n, w, data), Labels: labels, Names: append([]string(nil), Features...)}, nil
}

func column(df dataframe.DataFrame, name string) ([]string, error) {
	s := df.Col(name)
	if s.Err != nil {
		return nil, xerrors.Errorf("missing column %v: %w", name, model.ErrLookup)
	}
	return s.Records(), nil
}
