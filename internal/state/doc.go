// Package state holds the generic pieces every screen is built from.
//
// A Holder keeps one screen's state (value plus loading / loaded / failed
// flags), publishes every change to subscribers and implements the two
// update shapes screens need: Load (await a fetch, copy the result in) and
// Mutate (optimistic update with rollback). A Pager adds pagination glue on
// top of a Holder. A Scope is a screen's lifetime: work bound to it is
// cancelled when the screen goes away.
//
// None of this is specific to the HR domain.
package state
