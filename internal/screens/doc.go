// Package screens holds one view-model per screen of the client.
//
// A screen owns a state.Holder (or a state.Pager for lists) and exposes the
// operations a user can trigger on it. Every operation runs under the
// screen's state.Scope, so closing the scope cancels whatever the screen
// still has in flight. Presentation code reads State or subscribes to it and
// never talks to the services directly.
package screens
