/*
Package errors implements custom error interfaces for apostille.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Every error returned by the
library wraps one of the root errors declared here, so callers can test the
kind of a failure using the Is method, for example

	if errors.ErrInvalidInput.Is(err) {
		// quorum, minimum removal or hash algorithm rejected
	}

If you want to register a custom error - use Register(code, description).
For reusing errors - use Wrap(ErrXyz, "...") and Wrapf.

There is also support for stacktraces. Please ensure you create the custom
error using errors.Wrap(err, "...") at the point of creation to ensure we attach a stacktrace. If you wrap multiple times, we only
record the first wrap with the stacktrace.

Once you have an error, you can use fmt.Printf/Sprintf to get more context
	%s is just the error message
	%+v is the error message followed by the full stack trace
*/
package errors
