// Package isingvqe searches for low-energy configurations of a 2D
// transverse-field Ising instance with a variational quantum circuit that is
// simulated in memory, so no hardware is needed.
//
// 🚀 What is isingvqe?
//
//	A small, deterministic toolkit that brings together:
//		• Instances: L×L lattices of ±1 fields and nearest-neighbour couplings
//		• Circuits: a plain gate list (H, X, Z^t, RX^t, CZ^t, CNOT)
//		• Ansatz: prepare → field → coupling → mixer layers from (x, h, j)
//		• Simulation: an exact complex128 state-vector engine
//		• Sampling: Born-rule measurement with a caller-supplied RNG
//		• Energy: Ising folding of bitstrings and histogram averaging
//		• Sweep: a concurrent grid search over (x, h, j) with a ranked landscape
//
// ✨ Why choose isingvqe?
//
//   - Reproducible – one seed drives every point, whatever the worker count
//   - Explicit errors – sentinel values wrapped with %w, checked with errors.Is
//   - Pure Go – no cgo, the simulator is a few hundred lines
//
// Packages:
//
//	lattice/  — Instance, Site, Bond; Uniform and Random generators
//	circuit/  — Operation, Kind and Program
//	ansatz/   — Build(lattice, Params) circuit.Program
//	statevec/ — State, Evolve, EvolveQubits; options for qubit cap and norm check
//	sampler/  — Draw and Counts
//	energy/   — Fold, Estimate, Histogram, Expectation
//	sweep/    — Axis, Grid, Optimize, Evaluate, Result
//	cmd/isingsweep — command-line driver
//
// Quick ASCII example of a 2×2 instance and its qubit numbering:
//
//	    q0 ─── q1
//	    │      │
//	    q2 ─── q3
//
// Every site carries a field h[r][c], every │ a row coupling between
// (r,c) and (r+1,c), and every ─ a column coupling between (r,c) and
// (r,c+1). The energy of a configuration s∈{+1,−1}⁴ is Σ h·s + Σ J·s·s
// over those terms.
//
//	go install github.com/katalvlaran/isingvqe/cmd/isingsweep@latest
package isingvqe
