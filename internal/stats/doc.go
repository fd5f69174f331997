// Package stats implements the Wilson score confidence interval for a
// binomial proportion and the normal quantile function it depends on.
//
// # Quantile
//
// Quantile inverts the standard normal CDF with Acklam's piecewise rational
// approximation:
//  1. p < 0.02425: rational function of q = sqrt(-2 ln p) (lower tail).
//  2. p > 0.97575: the same function of q = sqrt(-2 ln(1-p)), negated.
//  3. otherwise: rational function of r = (p-0.5)^2, scaled by p-0.5.
//
// The relative error is bounded by about 1.15e-9 over (0,1). No refinement
// step is applied; a single evaluation is the result.
//
// # Wilson interval
//
// WilsonInterval takes the two-sided critical value z = Quantile(1-α/2) and
// applies the closed form
//
//	center     = (p̂ + z²/2n) / (1 + z²/n)
//	half width = z·sqrt((p̂(1-p̂) + z²/4n) / n) / (1 + z²/n)
//
// clamping the bounds to [0,1].
//
// # Errors
//
// Out-of-range arguments return a *DomainError, which matches ErrDomain under
// errors.Is. Both functions are pure and safe for concurrent use.
package stats
