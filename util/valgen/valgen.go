// Some helpers using closures to generate sample and tap values
package valgen

import "math/big"

// Gen yields the next value of a sequence on each call.
type Gen func() *big.Int

func MakeConstGen(constant int64) Gen {
	return func() *big.Int {
		return big.NewInt(constant)
	}
}

func MakeIncreasingGen(start int64) Gen {
	current := start
	return func() *big.Int {
		current++
		return big.NewInt(current)
	}
}

// MakeImpulseGen yields amplitude once, then zeros.
func MakeImpulseGen(amplitude int64) Gen {
	fired := false
	return func() *big.Int {
		if fired {
			return new(big.Int)
		}
		fired = true
		return big.NewInt(amplitude)
	}
}

// MakeSquareGen alternates between high and low every halfPeriod values.
func MakeSquareGen(high, low int64, halfPeriod int) Gen {
	n := 0
	return func() *big.Int {
		v := high
		if (n/halfPeriod)%2 == 1 {
			v = low
		}
		n++
		return big.NewInt(v)
	}
}

// Take draws n values from gen.
func Take(gen Gen, n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = gen()
	}
	return out
}
