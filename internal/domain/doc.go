// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (record.go, polarity.go, aggregate.go, errors.go) hold the shared
// types and the contracts between pipeline stages. No implementation code.
package domain
