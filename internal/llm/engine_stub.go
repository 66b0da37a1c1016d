//go:build !llama

package llm

// This file keeps default builds CGO-free. The real engine lives in
// engine_llama.go behind the 'llama' build tag.

var llamaBuilt = false

func loadLlama(path string, contextSize, threads int) (Engine, error) {
	return nil, ErrDependencyUnavailable("llama support not built (missing 'llama' build tag)")
}
