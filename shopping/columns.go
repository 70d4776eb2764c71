package shopping

import (
	"go-ml.dev/pkg/shopping/model"
	"golang.org/x/xerrors"
	"strconv"
)

// Label is the column holding the purchase outcome
const Label = "Revenue"

// Features lists session columns in feature vector order
var Features = []string{
	"Administrative",
	"Administrative_Duration",
	"Informational",
	"Informational_Duration",
	"ProductRelated",
	"ProductRelated_Duration",
	"BounceRates",
	"ExitRates",
	"PageValues",
	"SpecialDay",
	"Month",
	"OperatingSystems",
	"Browser",
	"Region",
	"TrafficType",
	"VisitorType",
	"Weekend",
}

// months are 0 based, the public dataset spells June in full
var months = map[string]int{
	"Jan": 0, "Feb": 1, "Mar": 2, "Apr": 3, "May": 4, "Jun": 5, "June": 5,
	"Jul": 6, "Aug": 7, "Sep": 8, "Oct": 9, "Nov": 10, "Dec": 11,
}

var visitorTypes = map[string]int{
	"Returning_Visitor": 1,
	"New_Visitor":       0,
	"Other":             0,
}

var booleans = map[string]int{"TRUE": 1, "FALSE": 0}

type converter func(string) (float64, error)

var converters = map[string]converter{
	"Administrative":          integer,
	"Administrative_Duration": number,
	"Informational":           integer,
	"Informational_Duration":  number,
	"ProductRelated":          integer,
	"ProductRelated_Duration": number,
	"BounceRates":             number,
	"ExitRates":               number,
	"PageValues":              number,
	"SpecialDay":              number,
	"Month":                   lookup(months),
	"OperatingSystems":        integer,
	"Browser":                 integer,
	"Region":                  integer,
	"TrafficType":             integer,
	"VisitorType":             lookup(visitorTypes),
	"Weekend":                 lookup(booleans),
}

func integer(s string) (float64, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, xerrors.Errorf("%q is not an integer: %w", s, model.ErrParse)
	}
	return float64(v), nil
}

func number(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, xerrors.Errorf("%q is not a number: %w", s, model.ErrParse)
	}
	return v, nil
}

func lookup(m map[string]int) converter {
	return func(s string) (float64, error) {
		v, ok := m[s]
		if !ok {
			return 0, xerrors.Errorf("unknown token %q: %w", s, model.ErrLookup)
		}
		return float64(v), nil
	}
}

/*
Month returns 0 based month index, Jan is 0 and Dec is 11
*/
func Month(s string) (int, error) {
	v, err := lookup(months)(s)
	return int(v), err
}

/*
Revenue returns 1 for TRUE and 0 for FALSE
*/
func Revenue(s string) (int, error) {
	v, err := lookup(booleans)(s)
	return int(v), err
}
