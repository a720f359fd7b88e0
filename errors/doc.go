/*
Package errors provides semantic error types for the CrudStore library.

The package defines the failure taxonomy every conforming backend can signal,
with specific types that can be checked using the standard errors.Is()
function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound     = errors.New("entity not found")
	    ErrDuplicateID  = errors.New("duplicate entity id")
	    ErrInvalidInput = errors.New("invalid input")
	    ErrStorage      = errors.New("storage failure")
	)

Usage:

	// Check error type
	user, err := repo.FindByID(ctx, "123")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return nil, fmt.Errorf("user %s does not exist", "123")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("User", "123")
	err := errors.NewDuplicateIDError("User", "123")
	err := errors.NewStorageError("save", ioErr)

Absence is an expected outcome for find, update and remove operations, so
callers should branch on IsNotFound rather than treat it as fatal. ErrStorage
exists for persistent backends outside this module; the in-memory reference
backend never returns it.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
