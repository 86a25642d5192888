package domain

import "errors"

var (
	// ErrMalformedData is returned when a dictionary file exists but does not
	// decode into a sequence of word/translation records.
	ErrMalformedData = errors.New("malformed dictionary data")

	// ErrNoPersistencePath is returned by a save with no explicit path before
	// any path was loaded.
	ErrNoPersistencePath = errors.New("no persistence path")

	// ErrIO wraps read and write failures of the underlying storage.
	ErrIO = errors.New("dictionary storage i/o failure")

	// ErrUnsupportedLocale is returned when no collation rules exist for the
	// requested locale.
	ErrUnsupportedLocale = errors.New("unsupported locale")

	ErrEmptyField    = errors.New("word and translation cannot be empty")
	ErrDuplicateWord = errors.New("word already in dictionary")
)
