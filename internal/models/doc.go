// Package models provides whole-brain neural-mass model variants.
//
// Each model implements the [nmm.Model] interface, defining the
// differential equations evaluated per region at every integration step:
//
//   - [Deco2018]: Dynamic Mean Field (reduced Wong-Wang) with a fixed
//     per-region feedback-inhibition gain and optional receptor-density
//     gain modulation
//   - [Naskar2021]: Multiscale DMF with local inhibitory plasticity
//     (the feedback-inhibition weight evolves as a state variable)
//
// Model parameters accept a scalar or a per-region array ([Param]) and
// are packed into an immutable table by Build before simulation.
package models
