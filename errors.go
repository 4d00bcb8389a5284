package pedals

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is wrapped by every error caused by parameters outside the
// domain of a generator.
var ErrDomain = errors.New("domain error")

func domainErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDomain, fmt.Sprintf(format, args...))
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domainErrorf("%s must be finite, got %g", name, v)
	}
	return nil
}

func checkPoints(name string, n, min int) error {
	if n < min {
		return domainErrorf("%s must be at least %d, got %d", name, min, n)
	}
	return nil
}
