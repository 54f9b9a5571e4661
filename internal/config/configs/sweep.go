package configs

import "time"

// Sweep configures the periodic expired-campaign sweep. The observed
// production cadence is daily; the interval is tunable for testing.
type Sweep struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Interval time.Duration `env:"INTERVAL" envDefault:"24h"`
}
