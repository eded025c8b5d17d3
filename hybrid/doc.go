// Package hybrid chains the two shape solvers into an adaptive two-stage
// pipeline (the ADAM-style multi-stage idea applied to ground photometry):
//
//	Stage 1 — convex inversion (package convex): recovers spin and a convex
//	shape. Cheap, robust, and sufficient for most targets.
//
//	Stage 2 — evolutionary refinement (package evolve): runs only when the
//	convex residual exceeds a threshold, which is the signature of a
//	genuinely non-convex body (contact binaries, large concavities). The
//	population is seeded with the convex solution at the fixed Stage 1 spin.
//
// The final answer is whichever stage fits better; with the GA seeded by the
// convex mesh and protected by elitism, the pipeline never returns a worse
// fit than Stage 1 alone.
package hybrid
