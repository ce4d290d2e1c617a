// Package catalog provides an HTTP client for the remote orchid catalog API.
//
// # Overview
//
// The catalog is owned by a remote store. The app only ever holds a
// point-in-time copy of it, fetched wholesale and replaced wholesale. This
// package defines the wire types (Category, Item, User) and the three calls
// the app makes:
//
//   - GET  /menu              → []Category
//   - PUT  /menu/{categoryId} → Category (the full item list is replaced)
//   - POST /login             → opaque user payload
//
// # Client Usage
//
//	client, err := catalog.NewClient("https://example.mockapi.io/api/v1")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	categories, err := client.FetchMenu(ctx)
//	if err != nil {
//		log.Printf("menu fetch failed: %v", err)
//	}
//
// # Base URL
//
// The API base accepts several forms:
//
//   - "127.0.0.1:7490" → http://127.0.0.1:7490
//   - "https://host/api/v1" → https://host/api/v1 (the path prefix is kept)
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: orchid/0.1
//   - Carry a fresh X-Request-ID so failures can be matched with server logs
//   - Have a 10-second timeout unless WithTimeout overrides it
//
// # Error Handling
//
//   - Network errors: wrapped as "execute request <id>: ..."
//   - HTTP errors: *StatusError with method, path and status code
//   - Empty or falsy bodies: ErrEmptyResponse
//   - Malformed JSON: "decode response: ..."
//
// # Item Identifiers
//
// An item id starts with its category id. NextItemID derives the id for a new
// item from the last item of a category, and CategoryIDOf recovers the owning
// category of an existing item.
package catalog
