package utils

import "github.com/google/uuid"

// TraceIDHeader is the header carrying the trace id of a request.
const TraceIDHeader = "X-Trace-ID"

// UUIDGenerator produces time-ordered ids for request tracing.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random UUIDv4 if the clock based
// generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidTraceID reports whether s parses as a UUID.
func IsValidTraceID(s string) bool {
	return uuid.Validate(s) == nil
}
