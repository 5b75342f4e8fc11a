package jobposting

import "errors"

var (
	ErrNotFound     = errors.New("job posting not found")
	ErrFailedToSave = errors.New("failed to save job posting")
	ErrFailedToLoad = errors.New("failed to load job posting")
	ErrNilStorage   = errors.New("job posting storage is required")

	ErrFailedToCreateIndexes = errors.New("failed to create job posting indexes")
)
