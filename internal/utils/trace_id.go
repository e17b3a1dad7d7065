package utils

import "github.com/google/uuid"

const maxTraceIDLength = 128

// TraceIDGenerator hands out time-ordered request trace ids.
type TraceIDGenerator struct{}

func NewTraceIDGenerator() TraceIDGenerator {
	return TraceIDGenerator{}
}

// Generate returns a UUIDv7, or a random UUIDv4 if the clock source fails.
func (TraceIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// IsValidTraceID reports whether a caller-supplied trace id can be echoed
// back and logged: non-empty, at most 128 bytes, visible ASCII only.
func IsValidTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
