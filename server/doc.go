// Package server exposes the solver suite over HTTP.
//
// Routes:
//
//	POST /api/generate            - sample a random graph pair
//	POST /api/mces/:algorithm     - solve one pattern/target pair
//	GET  /healthz                 - liveness probe
//	GET  /metrics                 - Prometheus exposition
//
// The solve route accepts the six stable algorithm identifiers
// ("bruteforce", "bruteforce_arcmatch", "connected", "greedy_path", "ilp",
// "simulated_annealing"). Requests are independent and stateless; the
// handlers share no mutable state, so gin's per-request goroutines need no
// extra synchronization.
//
// Error mapping is by sentinel: structural and option errors become 400,
// an unknown algorithm identifier becomes 404, an engine failure becomes
// 500. Bodies are {"error": "..."} on every non-2xx path.
package server
