package accounts

import "time"

// IsWithinPeriod reports whether t falls inside the trailing window of
// length d ending at now. Used for reset cooldowns and code expiry.
func IsWithinPeriod(t time.Time, d time.Duration, now time.Time) bool {
	return t.After(now.Add(-d))
}

// IsOutsidePeriod is the negation of IsWithinPeriod.
func IsOutsidePeriod(t time.Time, d time.Duration, now time.Time) bool {
	return !IsWithinPeriod(t, d, now)
}
