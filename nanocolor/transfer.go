package nanocolor

import (
	"math"
)

// TransferParams derives the breakpoint K0 and the slope phi of the linear
// segment of the transfer curve described by gamma and linearBias. The
// resulting piecewise curve is continuous with a continuous first
// derivative at K0.
//
// A gamma of 1 describes a linear space, K0 is +Inf so the linear segment
// covers the whole domain. A linearBias <= 0 (or a gamma below 1) describes
// a pure power curve, K0 is 0 so only negative values take the linear
// segment. A gamma below 1 with a positive linearBias has no continuous
// solution, the bias is ignored here and color space constructors reject
// the pair with ErrInvalidLinearBias.
func TransferParams(gamma, linearBias float64) (k0, phi float64) {
	switch {
	case gamma == 1:
		return math.Inf(1), 1
	case linearBias <= 0 || gamma < 1:
		return 0, 1
	}
	a, g := linearBias, gamma
	k0 = a / (g - 1)
	phi = (a / math.Pow((g*a)/(g+g*a-1-a), g)) / (g - 1)
	return
}

type transfer struct {
	gamma, inv_gamma, bias, k0, phi, linear_break float64
}

func new_transfer(gamma, linearBias, k0, phi float64) transfer {
	return transfer{gamma: gamma, inv_gamma: 1 / gamma, bias: linearBias, k0: k0, phi: phi, linear_break: k0 / phi}
}

func (t *transfer) is_linear() bool { return t.gamma == 1 }

// to_linear maps an encoded value to linear light.
func (t *transfer) to_linear(v float64) float64 {
	if v < t.k0 {
		return v / t.phi
	}
	return math.Pow((v+t.bias)/(1+t.bias), t.gamma)
}

// from_linear maps linear light to an encoded value.
func (t *transfer) from_linear(v float64) float64 {
	if v < t.linear_break {
		return v * t.phi
	}
	return (1+t.bias)*math.Pow(v, t.inv_gamma) - t.bias
}

func (t *transfer) to_linear3(v RGB) RGB {
	if t.is_linear() {
		return v
	}
	return RGB{t.to_linear(v[0]), t.to_linear(v[1]), t.to_linear(v[2])}
}

func (t *transfer) from_linear3(v RGB) RGB {
	if t.is_linear() {
		return v
	}
	return RGB{t.from_linear(v[0]), t.from_linear(v[1]), t.from_linear(v[2])}
}
