package configs

import "time"

// Sweep configures the built-in scheduler that reinvokes the enforcement
// sweeps on fixed intervals. The sweeps themselves carry no retry logic;
// the interval is the retry mechanism. Resets fire when a tick crosses a
// day or month boundary.
type Sweep struct {
	// Enabled starts the scheduler alongside the HTTP server. The sweeps
	// remain invocable through the API when disabled.
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// BudgetInterval is how often budget limits are enforced.
	BudgetInterval time.Duration `env:"BUDGET_INTERVAL" envDefault:"5m"`
	// DaypartingInterval is how often dayparting is enforced.
	DaypartingInterval time.Duration `env:"DAYPARTING_INTERVAL" envDefault:"1m"`
	// ResetCheckInterval is how often the scheduler looks for a crossed
	// day or month boundary.
	ResetCheckInterval time.Duration `env:"RESET_CHECK_INTERVAL" envDefault:"1m"`
}
