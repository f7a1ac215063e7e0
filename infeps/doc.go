// Package infeps provides exact extended numbers used to report optimal values.
//
// A Value combines a rational part with an infinitesimal coefficient and an
// infinite one. This is enough to express the three kinds of optimum an
// optimizer can find: a finite value reached by some model (r), a strict
// bound that is approached but never reached (r - ε), and an objective that
// has no upper bound at all (oo).
//
// Values are totally ordered, lexicographically on the infinite, rational and
// infinitesimal parts:
//
//	-oo < 3 - epsilon < 3 < 3 + epsilon < 4 < oo
//
// The infinitesimal part is never folded into the rational part: scaling or
// adding values acts on each component separately.
package infeps
