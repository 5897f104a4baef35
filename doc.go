// Package lvlsimplex is an in-memory linear programming engine built around
// the classic tableau (simplex) method — from tableau construction to
// step-by-step pivoting and full Two-Phase solving.
//
// 🚀 What is lvlsimplex?
//
//	A small, deterministic library that brings together:
//		• Tableau primitives: constraint rows, basis, Cj and the derived Zj / Cj−Zj rows
//		• Pivot engine: entering/leaving selection + Gauss–Jordan elimination
//		• Formulation: standard (all ≤) and Two-Phase (≥ / =) problem setup
//		• Sessions: single-step iteration, auto-solve, reset & replay
//
// ✨ Why choose lvlsimplex?
//
//   - Snapshot-first – every step yields a complete tableau snapshot, ready to render
//   - Deterministic – stable tie-breaks, pure pivots, replayable sessions
//   - No hidden state – the engine returns values; your UI owns presentation
//   - Extensible – direction-parameterized pivot rules shared by every phase
//
// Everything is organized under three subpackages:
//
//	tableau/   — the augmented-matrix data structure and the pivot engine
//	formulate/ — turns a raw problem statement into an initial tableau
//	session/   — stepping, auto-solve, Two-Phase orchestration, reset
//
// Quick sketch of a solve:
//
//	Maximize Z = 3x1 + 5x2
//	    x1        ≤  4
//	         2x2  ≤ 12
//	    3x1 + 2x2 ≤ 18
//
//	p := formulate.Problem{ ... }
//	s, _ := session.New(p)
//	snap, _ := s.Solve(context.Background())
//	// snap.Objective == 36, solution x1=2, x2=6
//
// Dive into each package's doc.go for the full API reference and the exact
// pivot/tolerance rules.
//
//	go get github.com/katalvlaran/lvlsimplex
package lvlsimplex
