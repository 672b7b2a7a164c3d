package errors

import (
	"errors"
	"fmt"
)

var (
	ErrExifToolNotFound = errors.New("exiftool not installed or not in PATH")
	ErrNoFilesFound     = errors.New("No LRV files found")
	ErrNoGPSData        = errors.New("No GPS data extracted from any file")
)

func ErrNotFound(item string) error {
	return fmt.Errorf("%s not found", item)
}
