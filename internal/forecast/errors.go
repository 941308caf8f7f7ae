package forecast

import "fmt"

// MalformedInputError reports an hourly record whose timestamp cannot be parsed
type MalformedInputError struct {
	Index int
	Time  string
	Err   error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("hour %d: malformed timestamp %q: %v", e.Index, e.Time, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// EmptyFieldSchemaError reports a record with neither a timestamp nor any
// recognized measurement
type EmptyFieldSchemaError struct {
	Index int
}

func (e *EmptyFieldSchemaError) Error() string {
	return fmt.Sprintf("hour %d: record has no timestamp and no recognized fields", e.Index)
}
