package grammar

import "sync"

// sharedEntry builds one octave size at most once.
type sharedEntry struct {
	once sync.Once
	set  *Set
	err  error
}

var (
	sharedMu   sync.Mutex
	sharedSets = make(map[int]*sharedEntry)
)

// Shared returns the process-wide Set for octave size n, generating it on
// first use. Concurrent callers for the same n block until the single build
// finishes and then all receive the same *Set.
func Shared(n int) (*Set, error) {
	sharedMu.Lock()
	e, ok := sharedSets[n]
	if !ok {
		e = &sharedEntry{}
		sharedSets[n] = e
	}
	sharedMu.Unlock()

	e.once.Do(func() {
		e.set, e.err = Generate(n)
	})
	return e.set, e.err
}
