// Package domain contains shared domain types used across the classifier's
// sub-packages. Classification labels and results live in
// domain/classification; the keyword scorer lives in domain/heuristic. This
// root package holds the sentinel errors that every layer maps against.
package domain
