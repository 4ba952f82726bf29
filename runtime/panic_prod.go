//go:build !dev
// +build !dev

package runtime

// observePanic logs a panic from update or view in production mode and then
// re-panics. The runtime never recovers; the container is left as it was at
// the moment of the panic.
func (p *Program[M, A]) observePanic(stage string) {
	if rec := recover(); rec != nil {
		p.logger.Error("Panic during render cycle", "stage", stage, "container", p.containerID, "panic", rec)
		panic(rec)
	}
}
