package mathutil

import (
	"errors"
	"math/big"
)

// ErrNegative is returned when a factorial of a negative number is requested.
var ErrNegative = errors.New("mathutil: factorial of negative number")

// Factorial returns n! for non-negative n. Results are exact for any n.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}

	result := big.NewInt(1)
	for i := 2; i <= n; i++ {
		result.Mul(result, big.NewInt(int64(i)))
	}
	return result, nil
}
