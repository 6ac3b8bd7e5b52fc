package check

// Checker is implemented by all check types.
// Each check validates one aspect of the launch environment
// and returns a Result indicating success or failure.
//
// Implementations:
//   - runtimecheck.Check: validates the FXPYTHON runtime variable
//   - toolkit.Check: locates the wx site-packages root
//   - toolkit.InterpreterCheck: reports on the companion interpreter
type Checker interface {
	Run() Result
}
