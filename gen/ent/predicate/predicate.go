// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Device is the predicate function for device builders.
type Device func(*sql.Selector)

// Reading is the predicate function for reading builders.
type Reading func(*sql.Selector)

// ScanFile is the predicate function for scanfile builders.
type ScanFile func(*sql.Selector)

// ScanJob is the predicate function for scanjob builders.
type ScanJob func(*sql.Selector)
