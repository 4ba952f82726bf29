//go:build dev
// +build dev

package runtime

// observePanic does nothing in development mode; panics from update and
// view reach the caller untouched to aid debugging.
func (p *Program[M, A]) observePanic(stage string) {}
