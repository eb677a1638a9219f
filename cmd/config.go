package cmd

import "time"

// Config carries the runtime settings of the application, loaded from the
// environment by the entry point.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ReviewReminderDelay is how long after completion a pickup waits
	// before the user is reminded to leave a review.
	ReviewReminderDelay time.Duration
}
