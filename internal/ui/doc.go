// Package ui is the Bubble Tea terminal interface of orchid.
//
// # Screens
//
//   - Sign in: email and password inputs. Login problems, including blank
//     fields, are shown in a blocking notice.
//   - Catalog: category sections with their items, a favorite marker, and a
//     top-of-the-week badge. Items can be favorited, added, edited and deleted.
//   - Favorites: the saved item snapshots, including ones no longer listed in
//     the catalog.
//
// Tab switches between catalog and favorites. Entering the catalog is a focus
// event: favorites are re-read and the catalog is fetched again.
//
// # Background Work
//
// Fetches, edits and sign-in run as tea.Cmd functions under a context owned by
// the screen that started them (browse.Tasks). Leaving a screen or signing
// out cancels that screen's work, so a late response cannot change state the
// screen no longer shows. A periodic tick copies the shared state.Snapshot and
// favorites into the model; the spinner runs while a fetch or edit is in
// flight.
//
// Errors other than sign-in failures only reach the status line.
//
// # Key Bindings
//
// Bindings live in keys.go (bubbles/key); the help overlay (h or ?) is built
// from the same key map. T cycles the theme and stores the choice in prefs.
package ui
