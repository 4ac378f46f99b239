package config // package config loads application configuration from environment variables

import (
	"crypto/rand"  // rand supplies the per-process session secret
	"encoding/hex" // hex encodes the raw secret bytes into a usable string
	"log"          // log is used to report configuration errors and halt execution
	"os"           // os provides access to environment variables
	"strconv"      // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable, except SessionSecret which is regenerated from
// crypto/rand on every process start.  Regeneration means flash tokens
// issued before a restart no longer verify, which is acceptable because
// flashes are short-lived confirmations, not session state.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	SessionSecret string // random secret signing flash tokens, new on every start
	FlashTTLMin   int    // flash token time-to-live in minutes
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),      // environment (dev/test/prod)
		Port:          must("APP_PORT"),     // port to bind the HTTP server
		DBUser:        must("DB_USER"),      // database user
		DBPass:        os.Getenv("DB_PASS"), // database password (empty allowed)
		DBHost:        must("DB_HOST"),      // database host
		DBPort:        must("DB_PORT"),      // database port
		DBName:        must("DB_NAME"),      // database name
		SessionSecret: newSecret(),          // fresh 32-byte secret per process
		FlashTTLMin:   envIntDefault("FLASH_TTL_MIN", 5),
	}
}

// newSecret returns 32 random bytes hex-encoded.  Failure to read from the
// system entropy source is unrecoverable, so it is fatal.
func newSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("could not generate session secret: %v", err)
	}
	return hex.EncodeToString(buf)
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// envIntDefault reads an optional integer variable, falling back to def when
// the variable is unset or unparsable.
func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
