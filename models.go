package accounts

import (
	"encoding/json"
	"time"
)

// SchemaVersion is the canonical on-disk record version. Version 1 records
// predate the stats counters; decode migrates them in place.
const SchemaVersion = 2

// AccountStatus is the lifecycle state derived from a record.
type AccountStatus = string

const (
	// StatusUnregistered means no record exists for the username.
	StatusUnregistered AccountStatus = "unregistered"
	// StatusPending means the record exists but has not been activated.
	StatusPending AccountStatus = "pending"
	// StatusActive means the activation code was confirmed.
	StatusActive AccountStatus = "active"
)

// UserRecord is the persisted state for one account. The username is not
// stored in the record; it is the file key and is immutable once created.
type UserRecord struct {
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"password,omitempty"`
	// AccountCode is a stable opaque identity token issued at creation. It is
	// independent of the activation flow and never used for authentication.
	AccountCode string `json:"accountCode,omitempty"`
	Activated   bool   `json:"activated"`
	// ActivationCode is present iff the account has not been activated yet.
	ActivationCode string `json:"activationCode,omitempty"`
	SchemaVersion  int    `json:"dataVersion,omitempty"`

	// Cloud payloads are owned by an unrelated feature and pass through
	// untouched. The randomizer and non-randomizer pairs are mutually
	// exclusive targets of a save, never cross-written.
	CloudBoxes            []json.RawMessage `json:"cloudBoxes,omitempty"`
	CloudTitles           []string          `json:"cloudTitles,omitempty"`
	CloudRandomizerBoxes  []json.RawMessage `json:"cloudRandomizerBoxes,omitempty"`
	CloudRandomizerTitles []string          `json:"cloudRandomizerTitles,omitempty"`

	// LastAccessed is milliseconds since the epoch.
	LastAccessed int64          `json:"lastAccessed,omitempty"`
	Stats        map[string]int `json:"stats,omitempty"`

	// ResetCode is present iff a password reset is pending.
	ResetCode       string `json:"resetCode,omitempty"`
	ResetCodeSentAt int64  `json:"resetCodeSentAt,omitempty"`
}

// IsEmpty reports whether the record is the canonical empty value. Storing an
// empty record deletes the backing file.
func (r *UserRecord) IsEmpty() bool {
	return r == nil || r.Email == "" && r.PasswordHash == "" && r.AccountCode == ""
}

// Status derives the lifecycle state of the record.
func (r *UserRecord) Status() AccountStatus {
	if r.IsEmpty() {
		return StatusUnregistered
	}
	if r.Activated {
		return StatusActive
	}
	return StatusPending
}

// LastAccessedTime converts the stored millisecond timestamp.
func (r *UserRecord) LastAccessedTime() time.Time {
	return time.UnixMilli(r.LastAccessed)
}

// Touch stamps the last-accessed timestamp.
func (r *UserRecord) Touch(now time.Time) {
	r.LastAccessed = now.UnixMilli()
}

// ResetPending reports whether a password reset is in flight.
func (r *UserRecord) ResetPending() bool {
	return r.ResetCode != ""
}

// ClearReset drops pending password reset state.
func (r *UserRecord) ClearReset() {
	r.ResetCode = ""
	r.ResetCodeSentAt = 0
}

// migrate upgrades a decoded record to the canonical shape. It runs once at
// read time so business logic never sees legacy layouts.
func (r *UserRecord) migrate() {
	// an empty stats map is elided from the encoded form; reads always see a
	// map, whatever the version
	if r.Stats == nil {
		r.Stats = map[string]int{}
	}

	if r.SchemaVersion >= SchemaVersion {
		return
	}

	r.SchemaVersion = SchemaVersion
}

var accountTransitions = map[AccountStatus]map[AccountStatus]struct{}{
	StatusUnregistered: {
		StatusPending: {},
	},
	StatusPending: {
		StatusActive: {},
		// rollback path: creation failed after the record was written
		StatusUnregistered: {},
	},
	StatusActive: {
		StatusUnregistered: {},
	},
}

// CanTransition reports whether an account may move between two lifecycle
// states. Workflows consult it before mutating the store.
func CanTransition(from, to AccountStatus) bool {
	allowed, ok := accountTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}
