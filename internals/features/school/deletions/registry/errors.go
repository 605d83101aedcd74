package registry

import "fmt"

// ConfigurationError = kesalahan programmer (graph tidak lengkap / siklik),
// bukan kesalahan input user.
type ConfigurationError struct {
	Entity EntityType
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Entity == "" {
		return "deletion registry: " + e.Reason
	}
	return fmt.Sprintf("deletion registry: %s: %s", e.Entity, e.Reason)
}
