package accounts

import "time"

// SimpleConfig is a plain value implementation of Config with defaults that
// match the deployed system: one second lock polling, six character
// activation and reset codes, twelve character account codes, and one hour
// reset expiry and cooldown windows.
type SimpleConfig struct {
	StorageRoot          string
	LockPollInterval     time.Duration
	ActivationCodeLength int
	AccountCodeLength    int
	ResetCodeTTL         time.Duration
	ResetCooldown        time.Duration
}

// NewSimpleConfig returns a SimpleConfig rooted at dir with every knob at
// its default.
func NewSimpleConfig(dir string) *SimpleConfig {
	return &SimpleConfig{
		StorageRoot:          dir,
		LockPollInterval:     DefaultLockPollInterval,
		ActivationCodeLength: defaultActivationCodeLength,
		AccountCodeLength:    defaultAccountCodeLength,
		ResetCodeTTL:         time.Hour,
		ResetCooldown:        time.Hour,
	}
}

func (c *SimpleConfig) GetStorageRoot() string { return c.StorageRoot }

func (c *SimpleConfig) GetLockPollInterval() time.Duration {
	if c.LockPollInterval <= 0 {
		return DefaultLockPollInterval
	}
	return c.LockPollInterval
}

func (c *SimpleConfig) GetActivationCodeLength() int {
	if c.ActivationCodeLength <= 0 {
		return defaultActivationCodeLength
	}
	return c.ActivationCodeLength
}

func (c *SimpleConfig) GetAccountCodeLength() int {
	if c.AccountCodeLength <= 0 {
		return defaultAccountCodeLength
	}
	return c.AccountCodeLength
}

func (c *SimpleConfig) GetResetCodeTTL() time.Duration {
	if c.ResetCodeTTL <= 0 {
		return time.Hour
	}
	return c.ResetCodeTTL
}

func (c *SimpleConfig) GetResetCooldown() time.Duration {
	if c.ResetCooldown <= 0 {
		return time.Hour
	}
	return c.ResetCooldown
}

var _ Config = (*SimpleConfig)(nil)
