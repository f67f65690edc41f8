// Package accounts implements a file backed account store and the credential
// lifecycle workflows that operate on it: registration, activation, password
// verification and reset, deletion, and last-access tracking.
//
// Storage model:
//   - One JSON record per user under an accounts directory, keyed by the
//     case-folded username. A record file that does not exist means the
//     account does not exist; an empty record written through the store
//     removes the backing file.
//   - A single EmailToUsername.json table resolves registered emails to
//     usernames. The table is the sole source of truth for "does this email
//     already have an account" and follows the same absent-file rule.
//
// Concurrency:
//   - All mutating workflows serialize on a store-wide StoreLock acquired at
//     workflow entry and released on every exit path. The lock is coarse so
//     a record write and its index update commit as a unit. Reads do not
//     take the lock; individual file writes are atomic (temp file + rename)
//     so readers never observe a partial record.
//
// Workflows return rich errors from github.com/goliatone/go-errors carrying a
// category (validation, conflict, not found, auth, internal) and a stable
// text code so a request layer can map outcomes to user-facing statuses. A
// nil error is the success signal.
package accounts
