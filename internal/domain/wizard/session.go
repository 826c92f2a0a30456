package wizard

import (
	"errors"
	"time"
)

// ErrStaleSession is returned by a store when the session changed after it
// was read.
var ErrStaleSession = errors.New("wizard session was changed by another request")

// Session is a stored wizard. The estimate lives only inside it.
//
// Version counts saved edits; a store only accepts a Save carrying the
// version it currently holds.
type Session struct {
	ID        string    `json:"id"`
	Version   int64     `json:"version"`
	Wizard    *Wizard   `json:"wizard"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
