package cmd

import "time"

// Config carries every environment-sourced setting the service needs.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ServedRetention is how long served orders stay in the database
	// before the hourly purge job removes them.
	ServedRetention time.Duration
}
