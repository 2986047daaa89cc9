// Package server exposes the simulation core over HTTP for visualization
// front-ends.
//
// Endpoints:
//
//	POST /code-data    — build a code and return its parity-check rows,
//	                     qubit/stabilizer coordinates and logical operators.
//	POST /new-errors   — sample one error vector for a code and channel.
//	POST /decode       — decode a syndrome and return the correction split
//	                     into X and Z bit arrays.
//	POST /model-names  — list code families and decoders for a dimension.
//	GET  /metrics      — Prometheus metrics.
//
// All payloads are JSON; bit vectors travel as arrays of 0/1 integers.
package server
