// Package domain contains the core business entities of the
// application: decks, flashcards with their scheduling state, and the
// append-only review history. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
