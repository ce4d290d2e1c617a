// Package logtail reads the end of orchid's own log file for the in-app log
// view. Only the tail is read, so large logs stay cheap to open.
//
//	lines, err := logtail.Tail(cfg.LogPath, 200)
package logtail
