// Package config loads orchid's TOML configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path, when given
//  2. Otherwise ~/.config/orchid/config.toml
//  3. A missing file is not an error; defaults are used
//  4. Empty or missing fields keep their defaults
//
// After the file, a .env file in the working directory is read and the
// ORCHID_API_BASE variable, if set, replaces api_base. Variables already
// present in the environment win over .env entries.
//
// # Default Values
//
//   - Config file: ~/.config/orchid/config.toml
//   - Catalog store: 127.0.0.1:7490
//   - Favorites cache: ~/.local/share/orchid/favorites.json
//   - Log file: ~/.local/state/orchid/orchid.log
//   - Request timeout: 10s
//   - Periodic refresh: off
//
// # TOML Format
//
//	api_base = "http://127.0.0.1:7490/api"
//	favorites_path = "~/.local/share/orchid/favorites.json"
//	log_path = "~/.local/state/orchid/orchid.log"
//	request_timeout_seconds = 10
//	refresh_seconds = 0
//
// Tilde expansion is applied to the path fields.
package config
