// Package idgen generates IDs for trace records, transactions and commands.
package idgen

import (
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

var (
	generatorMutex        sync.Mutex
	generatorInstantiated bool
	generator             Generator
)

// Generator can generate IDs.
type Generator interface {
	// Generate an ID
	Generate() string
}

// NewSequential returns a generator that counts up from 1. IDs are
// deterministic as long as only one goroutine generates them.
func NewSequential() Generator {
	return &sequentialGenerator{}
}

// NewParallel returns a generator that is safe to share across goroutines
// but whose IDs are not deterministic.
func NewParallel() Generator {
	return parallelGenerator{}
}

// UseSequential configures the default generator to generate sequential IDs.
func UseSequential() {
	use(NewSequential())
}

// UseParallel configures the default generator to generate globally unique
// IDs.
func UseParallel() {
	use(NewParallel())
}

func use(g Generator) {
	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	if generatorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	generator = g
	generatorInstantiated = true
}

// Get returns the default generator. The sequential generator is used if
// none has been selected.
func Get() Generator {
	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	if !generatorInstantiated {
		generator = NewSequential()
		generatorInstantiated = true
	}

	return generator
}

type sequentialGenerator struct {
	nextID uint64
}

func (g *sequentialGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	return strconv.FormatUint(idNumber, 10)
}

type parallelGenerator struct{}

func (g parallelGenerator) Generate() string {
	return xid.New().String()
}
