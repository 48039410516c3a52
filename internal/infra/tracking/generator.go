// Package tracking generates externally visible shipment tracking numbers.
package tracking

import (
	"math/rand/v2"
	"strings"
	"time"

	"courier/internal/domain/service"
)

// prefix identifies the carrier on every tracking number.
const prefix = "CS"

// base36Alphabet is the character set of the random suffix, uppercased.
const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// suffixLength gives roughly 31 bits of entropy. Uniqueness is best-effort;
// the shipments table carries no constraint on tracking numbers.
const suffixLength = 6

type generator struct {
	now func() time.Time
}

// NewGenerator is the constructor for the tracking number generator.
func NewGenerator() service.TrackingNumberGenerator {
	return &generator{now: time.Now}
}

// Generate returns a tracking number of the form "CS" + two-digit year +
// six random base-36 characters, e.g. "CS26K3P9XA".
func (g *generator) Generate() string {
	year := g.now().Format("06")

	var sb strings.Builder
	sb.Grow(len(prefix) + len(year) + suffixLength)
	sb.WriteString(prefix)
	sb.WriteString(year)
	for range suffixLength {
		sb.WriteByte(base36Alphabet[rand.IntN(len(base36Alphabet))])
	}

	return sb.String()
}
