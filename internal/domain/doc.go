// Package domain contains the board's entities and shared domain types:
// the Project entity, the Status enum, sentinel errors, and the Valid
// constraint predicate used at input boundaries.
package domain
