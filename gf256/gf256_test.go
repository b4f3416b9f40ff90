package gf256_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/quietzone/qrencode/gf256"
)

func TestLogAntilogRoundTrip(t *testing.T) {
	for v := 1; v <= 255; v++ {
		assert.Equalf(t, v, int(gf256.AntilogTable[gf256.LogTable[v]]), "round trip failed for %d", v)
	}
}

func TestLogAntilogRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.IntRange(1, 255).Draw(t, "v")
		assert.Equal(t, v, int(gf256.AntilogTable[gf256.LogTable[v]]))
	})
}

func TestZeroExponentSentinel(t *testing.T) {
	assert.Equal(t, gf256.ZeroExponent, gf256.LogTable[0])
}

func TestMultiplyResultLength(t *testing.T) {
	p := gf256.NewInteger(1, 2, 3)
	q := gf256.NewInteger(4, 5)
	out := gf256.Multiply(p, q)
	assert.Len(t, out.Coeffs, len(p.Coeffs)+len(q.Coeffs)-1)
}

func TestGeneratorPolynomialDegreeOne(t *testing.T) {
	// The generator polynomial for degree 1 is simply (x - alpha^0) = (x - 1),
	// i.e. coefficients [1, 1] in GF(256) since -1 == 1 under XOR arithmetic.
	g := gf256.GeneratorPolynomial(1)
	require.Equal(t, []int{1, 1}, g.Coeffs)
}

func TestXORZeroExtendsShorterOperand(t *testing.T) {
	p := gf256.NewInteger(1, 2, 3)
	q := gf256.NewInteger(4)
	out := gf256.XOR(p, q)
	assert.Equal(t, []int{1 ^ 4, 2, 3}, out.Coeffs)
}

func TestDropLeadingZeroRequiresZeroHead(t *testing.T) {
	assert.Panics(t, func() {
		gf256.DropLeadingZero(gf256.NewInteger(1, 2, 3))
	})
	out := gf256.DropLeadingZero(gf256.NewInteger(0, 2, 3))
	assert.Equal(t, []int{2, 3}, out.Coeffs)
}

func TestMultiplyByAlphaPowerLeavesZeroUnchanged(t *testing.T) {
	p := gf256.Polynomial{Coeffs: []int{gf256.ZeroExponent, 3}, Notation: gf256.Exponent}
	out := gf256.MultiplyByAlphaPower(p, 10)
	assert.Equal(t, gf256.ZeroExponent, out.Coeffs[0])
	assert.Equal(t, 13, out.Coeffs[1])
}

func TestRSRemainderMatchesPolynomialEvaluation(t *testing.T) {
	// Evaluating (message || remainder) as a polynomial at alpha^0..alpha^(n-1)
	// must yield zero in GF(256) for a valid Reed-Solomon codeword.
	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 8).Draw(t, "k")
		n := rapid.IntRange(1, 6).Draw(t, "n")
		data := make([]int, k)
		for i := range data {
			data[i] = rapid.IntRange(0, 255).Draw(t, "byte")
		}

		g := gf256.GeneratorPolynomial(n)
		rem := gf256.RSRemainder(gf256.NewInteger(data...), g)
		require.Len(t, rem.Coeffs, n)

		full := append(append([]int{}, data...), rem.Coeffs...)
		for i := 0; i < n; i++ {
			assert.Zero(t, evalPolynomialAt(full, int(gf256.AntilogTable[i])))
		}
	})
}

// evalPolynomialAt evaluates a polynomial (coefficients highest-degree
// first) at the given GF(256) point using Horner's method.
func evalPolynomialAt(coeffs []int, x int) int {
	result := 0
	for _, c := range coeffs {
		result = gfMulForEval(result, x) ^ c
	}
	return result
}

func gfMulForEval(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return int(gf256.AntilogTable[(gf256.LogTable[a]+gf256.LogTable[b])%255])
}

func TestComputeDivisorMatchesGeneratorPolynomial(t *testing.T) {
	for n := 1; n <= 10; n++ {
		tagged := gf256.GeneratorPolynomial(n)
		divisor := gf256.ComputeDivisor(n)
		// tagged has n+1 coefficients with leading 1; divisor drops that 1.
		require.Len(t, divisor, n)
		for i, c := range divisor {
			assert.Equal(t, tagged.Coeffs[i+1], int(c))
		}
	}
}
