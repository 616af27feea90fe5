// Package errors defines the failure taxonomy shared by every confkit package.
//
// Sentinel errors identify the kind of failure and are what callers should
// test against with errors.Is:
//   - ErrDoesNotExist: a backing source (file, directory) could not be opened
//   - ErrUndefinedValue: an option is missing everywhere and has no default
//   - ErrUnsupportedExtension: no repository is registered for a file extension
//   - ErrUnsupportedFormat: a document parsed but is not a mapping at the top level
//   - ErrKeyNotFound: a repository does not hold the requested key
//   - ErrInvalidValue: a cast rejected its input
//
// Each sentinel has a typed counterpart carrying context (the path, the
// option name, the offending value) that unwraps to it:
//
//	_, err := cfg.Get("DATABASE_URL")
//	if errors.IsUndefinedValue(err) {
//	    var undef *errors.UndefinedValueError
//	    stdErrors.As(err, &undef)
//	    log.Fatalf("missing %s", undef.Option)
//	}
package errors
