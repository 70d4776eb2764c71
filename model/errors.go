package model

import "golang.org/x/xerrors"

var (
	// ErrParse means a numeric field or the table itself is malformed
	ErrParse = xerrors.New("parse error")
	// ErrLookup means a required column or a categorical token is unknown
	ErrLookup = xerrors.New("lookup error")
	// ErrShape means sizes or label values do not match
	ErrShape = xerrors.New("shape error")
	// ErrUndefinedRate means a rate was requested for a class with no samples
	ErrUndefinedRate = xerrors.New("undefined rate")
)
