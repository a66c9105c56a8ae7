package faking

import (
	mathrand "math/rand"

	"github.com/go-faker/faker/v4"
)

// Seed replaces faker's package level source so the catalogs sampled afterwards replay for the same seed.  The
// source is process wide; seed once before sampling, not per goroutine.
func Seed(seed int64) {
	faker.SetRandomSource(faker.NewSafeSource(mathrand.NewSource(seed)))
}
