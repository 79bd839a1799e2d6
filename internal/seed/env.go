package seed

import "os"

// adminPasswordFromEnv returns the configured default admin password,
// falling back to a development-only value.
func adminPasswordFromEnv() string {
	if password := os.Getenv("SFHMS_ADMIN_PASSWORD"); password != "" {
		return password
	}
	return "admin123"
}
