package clock

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/leohylee/tes-companion/internal/clock TimeProvider

// TimeProvider supplies the current time to repositories that stamp records
type TimeProvider interface {
	Now() time.Time
}

// System reads the wall clock in UTC
type System struct{}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}
