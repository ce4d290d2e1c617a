// Package app is the composition root of orchid.
//
// # Startup
//
// Run performs, in order:
//
//  1. config.Load, then flag overrides for the API base and refresh interval
//  2. Redirect the standard logger to the log file (tea.LogToFile)
//  3. prefs.Load for the theme and remembered email
//  4. catalog.NewClient against the configured store
//  5. favorites.NewStore over a FileCache, reloaded once
//  6. browse.New over a fresh state.Store, and an unauthenticated session.Gate
//  7. StartRefresher when a refresh interval is configured
//  8. ui.Run, which blocks until the user quits
//
// No request is sent before the UI starts: the catalog is fetched when the
// browsing screen gains focus after sign-in.
//
// # Periodic Refresh
//
// With refresh_seconds > 0 the refresher reloads the catalog on a timer while
// the session is authenticated. After consecutive failures the wait doubles
// up to 30 seconds and drops back to the base interval on the next success.
// Failures only log; the UI shows them through the state snapshot.
//
// # Error Handling
//
// Run returns errors for invalid configuration, an unusable API base, an
// unresolvable favorites path, or a log file that cannot be opened. Everything
// after startup is recoverable and reported in the UI.
package app
