// Package browse is the catalog view model behind the TUI.
//
// A Model keeps the local copy of the remote catalog (held in a state.Store)
// and the favorites set, and runs the edit workflows. Every mutation builds
// the complete new item list of the affected category, replaces the category
// remotely in one request, and reloads the full catalog afterwards. Ids of new
// items are derived from the last item in the category.
//
// Work started from a screen is registered with Tasks so that leaving the
// screen cancels it; responses that arrive after cancellation are dropped
// without touching the local copy.
package browse
