// Package workload produces the reproducible symbol streams the benchmark
// runs against.
package workload

import (
	"math/rand/v2"
	"strings"

	"symbench/internal/domain"
)

// Generate simulates an incoming network stream: count symbols drawn
// uniformly from pool with a seeded PCG source, so the same (count, seed)
// pair always yields the same sequence. Every element is cloned onto its
// own backing array; an equality check against a pool entry or the target
// has to compare bytes, it cannot shortcut on shared storage.
func Generate(pool *domain.SymbolPool, count int, seed uint64) []string {
	if count <= 0 || pool.Size() == 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	stream := make([]string, 0, count)
	for i := 0; i < count; i++ {
		stream = append(stream, strings.Clone(pool.At(rng.IntN(pool.Size()))))
	}
	return stream
}
