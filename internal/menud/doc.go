// Package menud is a small in-memory catalog store for local development and
// tests. It serves the three routes the client uses:
//
//	GET  /menu                  full catalog
//	PUT  /menu/{categoryId}     replace one category's items (404 when unknown)
//	POST /login                 bcrypt-checked credentials (401 on mismatch)
//
// State is lost on exit.
package menud
