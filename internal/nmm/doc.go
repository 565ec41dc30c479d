// Package nmm provides core primitives for whole-brain neural-mass
// simulation.
//
// The package defines the fundamental types shared by the model,
// integration and analysis packages:
//
//   - [Matrix]: dense variables × regions table
//   - [Model]: region-wise ODE right-hand side (dfun)
//   - [Coupler]: connectome coupling input
//   - [Stepper]: numerical integration step
//
// # Example
//
//	model := models.NewDeco2018()
//	model.Build(nRegions)
//	cpl := coupling.NewLinear(weights, g, model.CouplingVars())
//	s := sim.New(model, cpl, integrators.NewEulerMaruyama(sigma, seed), nRegions)
//	result, _ := s.Run(ctx, cfg)
//
// # Thread Safety
//
// A model's parameter table is read-only after Build and may be shared
// across concurrent simulations. The steps of one simulation are strictly
// sequential; Simulator instances are NOT thread-safe.
package nmm
