// Package card is a propositional decision procedure for the optimizer, backed by gini.
//
// Expressions are literals of a gini circuit: And, Or and cardinality
// constraints build gates, which are only turned into clauses when an
// expression is asserted or assumed. Objectives count true literals; their
// proxies are sorting networks, so that bounding a proxy is a single literal.
//
// Unlike the pb package, a Context keeps one incremental solver for its whole
// life. Each frame owns a selector literal guarding the clauses asserted in it;
// the selectors of live frames are assumed at every check, and popping a frame
// falsifies its selector for good.
package card
