package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrUnregisteredApplication matches every *UnregisteredApplicationError.
	ErrUnregisteredApplication = errors.New("registry: unregistered application")

	// ErrMissingComponentProvider is returned by RegisterConfig for a record
	// carrying neither a run function nor a component provider.
	ErrMissingComponentProvider = errors.New("registry: no component provider passed in")
)

// UnregisteredApplicationError reports a key that is absent or lacks the
// capability the caller asked for.
type UnregisteredApplicationError struct {
	Key string
}

func (e *UnregisteredApplicationError) Error() string {
	return fmt.Sprintf("Application %q has not been registered. "+
		"This is either due to an import error during initialization or failure to call RegisterComponent.", e.Key)
}

func (e *UnregisteredApplicationError) Is(target error) bool {
	return target == ErrUnregisteredApplication
}
