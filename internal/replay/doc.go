// Package replay reconstructs battle state from a recorded event log and
// slices event logs into reinforcement-learning trajectories (§2 "Replay /
// Trajectory", §6 "Replay"). It also encodes battle histories to a
// TOML-based record format analogous to the teacher's PHH hand-history
// encoder (internal/phh in the teacher repo).
package replay
