// Package fortune implements the random fortune feature.
//
// Every request, whatever its method or path, is answered with one randomly chosen
// entry from a read-only table of (id, body) rows, wrapped in a minimal HTML document
// and sent with a single configured status code (418 by default).
//
// # Selection
//
// Identifiers are sparse: rows may have been deleted without compaction. The Selector
// draws an id uniformly from [0, MaxID) and retries on a miss, re-reading MaxID each
// time. Misses and read errors are treated the same. The loop is bounded by
// Config.MaxAttempts and by the request deadline and then fails with ErrNoContent,
// so an empty table produces a 503 instead of a request that never finishes.
//
// When the max(id) query fails or the table is empty, the repository substitutes the
// configured fallback bound (388800 by default), chosen to exceed the real population.
//
// # Components
//
//   - Repository: gorm-backed point lookups and max(id).
//   - Selector: rejection sampling over the repository.
//   - Render: the HTML skeleton. Bodies are written verbatim, without escaping.
//   - Service / Handler / Feature: wiring into the CLI and the Fiber app.
package fortune
