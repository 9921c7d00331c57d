package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}

// PostgresConfigured reports whether a database was configured.
// Without one the application runs on in-memory storage.
func (c Config) PostgresConfigured() bool {
	return c.DBHost != ""
}
