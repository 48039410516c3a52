package service

// TrackingNumberGenerator produces externally visible shipment identifiers.
//
// The scheme is best-effort unique: a fixed carrier prefix, the two-digit
// current year, and a 6-character random base-36 suffix (about 31 bits of
// entropy). Collisions are possible and deliberately not guarded by a
// database constraint: at realistic shipment volumes the odds stay
// negligible, and a collision only makes a public tracking lookup return
// the older shipment, it never crosses ownership checks.
type TrackingNumberGenerator interface {
	// Generate returns a new tracking number, e.g. "CS26K3P9XA".
	Generate() string
}
