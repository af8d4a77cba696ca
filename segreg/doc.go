// Package segreg fits a continuous two-segment broken line
//
//	y = b0 + b1·x + b2·(x − psi)₊
//
// to a scalar series and locates its breakpoint psi.
//
// 🧭 Algorithm (linearized breakpoint search):
//
//	At the current estimate psi the model is linearized around psi, giving
//	a four-column least-squares problem
//	  [1, x, (x − psi)₊, −1{x > psi}] · (b0, b1, b2, gamma) ≈ y
//	whose last coefficient yields the Newton-like update psi += gamma/b2.
//	The step is halved until the candidate stays strictly inside
//	(x[0], x[last]) and does not increase the residual sum of squares.
//	The search stops when the breakpoint moves by at most the tolerance.
//
// ⚠️ Guards:
//   - the step-halving loop is bounded (WithMaxHalvings); exhausting it is
//     an ErrBreakpointDomain, never an endless loop;
//   - a vanishing slope change (flat data) or a singular design is an
//     ErrBreakpointDomain, never a NaN breakpoint;
//   - hitting the outer iteration cap is not an error: Fit reports it
//     through its reachedMax result and the caller decides.
//
// ⚙️ Usage:
//
//	p, reachedMax, err := segreg.Fit(x, y, 7, segreg.WithTolerance(1e-6))
//	if err != nil { ... }
//	yhat := p.Predict(x)
//
// Complexity: each outer iteration costs one QR solve O(n) for the fixed
// four columns plus O(n·h) for h step halvings.
package segreg
