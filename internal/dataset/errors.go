package dataset

import "errors"

// ErrSourceMissing reports that a dataset file could not be retrieved at
// all: the file does not exist, or the HTTP response was not successful.
var ErrSourceMissing = errors.New("dataset source missing")

// ErrMalformed reports that a dataset was retrieved but its content does
// not parse as header-keyed CSV. The table is discarded wholesale; a view
// never sees a partially populated record set.
var ErrMalformed = errors.New("dataset malformed")
