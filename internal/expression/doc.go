// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package expression implements a small, side-effect-free interpreter for
// boolean constraints over a single variable, such as "x>=18 and x<=30".
//
// Source text is tokenised by [Lexer], parsed by a recursive-descent parser
// into an AST and evaluated directly by walking the tree. The grammar only
// knows literals (numbers, strings, booleans), the declared variables,
// parentheses, arithmetic (+ - * / // % **), comparisons (== != < <= > >=,
// chainable) and the connectives and/or/not. Calls, attribute or index
// access, assignments and imports are rejected with [ErrForbidden].
//
// Parsing is bounded by [Limits] so that caller-supplied text cannot make the
// interpreter do unbounded work. A compiled [Expression] is immutable and
// may be evaluated concurrently with different bindings.
package expression
