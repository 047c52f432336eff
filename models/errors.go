package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSubmitInFlight is returned when a submit is requested while another
// submit for the same session is still outstanding.
var ErrSubmitInFlight = errors.New("submission already in progress")

// ErrDraftNotFound is returned by the draft store for unknown draft IDs.
var ErrDraftNotFound = errors.New("draft not found")

// ValidationError reports required fields that were empty (after trimming)
// or carried an unrecognized value at submit time.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid news input: " + strings.Join(e.Fields, ", ")
}

// UploadError is a terminal failure from the image host for one upload.
// StatusText carries the host's status line when the request reached it.
type UploadError struct {
	StatusText string
	Err        error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return "failed to upload image: " + e.Err.Error()
	}
	return "failed to upload image: " + e.StatusText
}

func (e *UploadError) Unwrap() error { return e.Err }

// PersistError is a failure of the remote news mutation, including the
// "mutation returned no data" case.
type PersistError struct {
	Op  string // addNews, editNews, deleteNews
	Err error
}

func (e *PersistError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + ": no data returned"
}

func (e *PersistError) Unwrap() error { return e.Err }

// IndexError reports a section index outside [0, len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("section index %d out of range [0, %d)", e.Index, e.Len)
}
