// Package source is the data-access boundary of the service: variables are
// named series with display metadata (units, missing-value count). The
// analysis pipeline never reaches past this interface.
package source

import (
	"context"
	"errors"
	"time"

	"github.com/gridlens/gridlens/internal/series"
)

// ErrVariableNotFound is returned when a variable name is unknown.
var ErrVariableNotFound = errors.New("variable not found")

// ErrVariableExists is returned when uploading a variable whose name is taken.
var ErrVariableExists = errors.New("variable already exists")

// VariableMeta describes a stored variable. Units and MissingCount are for
// display only; the pipeline never consumes them.
type VariableMeta struct {
	Name         string    `json:"name"`
	Units        string    `json:"units,omitempty"`
	PointCount   int       `json:"point_count"`
	MissingCount int       `json:"missing_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Source provides read/write access to variables. A Series returned by Get
// is a snapshot: its length and contents are immutable for the lifetime of
// the reference, which makes it a sound pipeline memo key.
type Source interface {
	// List returns metadata for every stored variable, sorted by name.
	List(ctx context.Context) ([]VariableMeta, error)

	// Get returns the series and metadata for a variable.
	Get(ctx context.Context, name string) (series.Series, VariableMeta, error)

	// Put stores a variable, replacing any existing series under the name
	// when replace is set.
	Put(ctx context.Context, name, units string, s series.Series, replace bool) (VariableMeta, error)

	// Delete removes a variable.
	Delete(ctx context.Context, name string) error
}
