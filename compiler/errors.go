package compiler

// CompileError is returned by Compile once a source-level error has been
// reported on stderr. Its Error() text is a summary only — the actual
// diagnostic (`[line L] Error ...: msg`) has already been written by the
// time this is returned. Panic-mode suppresses every error after the
// first within a single Compile call, so there is never more than one
// to report.
type CompileError struct{}

func (CompileError) Error() string {
	return "💥 CompileError: compilation failed"
}
