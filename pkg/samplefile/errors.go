package samplefile

import "fmt"

// UsageError reports caller-supplied arguments that are invalid on their
// face. It is returned before any file I/O happens.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NotFoundError reports an edit whose key matched no record eligible for
// the supplied update. The file is left untouched.
type NotFoundError struct {
	Key Key
	// Ore is true when the update targeted the TFC/Geolosys ore variants,
	// false when it targeted Immersive mineral/liquid fields.
	Ore bool
}

func (e *NotFoundError) Error() string {
	if e.Ore {
		return fmt.Sprintf("no TFC or Geolosys sample found in dimension %d at X=%d, Z=%d",
			e.Key.Dimension, e.Key.X, e.Key.Z)
	}
	return fmt.Sprintf("no Immersive sample found in dimension %d at X=%d, Z=%d",
		e.Key.Dimension, e.Key.X, e.Key.Z)
}
