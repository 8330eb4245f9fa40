// Package builder provides deterministic fixture constructors for the named
// test graphs of spec §8's scenarios (S1-S6): Complete (K_n), CompleteBipartite
// (K_n1,n2), Cycle (C_n), and Petersen. Each constructor returns a fresh
// core.Graph with vertices allocated in ascending index order (0..n-1, or
// partition-major for CompleteBipartite) and edges emitted in a stable,
// deterministic order, mirroring the teacher builder package's per-topology
// impl_*.go layout and sentinel-error contract.
package builder
