package loader

import "fmt"

// AccessError reports that the data file could not be opened or read.
// Fatal at startup: there is no dataset to serve without the file.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot read data file %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// FormatError reports that the file was readable but not usable: broken CSV
// or a header missing one of the required columns.
type FormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad data file %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("bad data file %s: %s", e.Path, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }
