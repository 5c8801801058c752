package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
	"strconv"

	"github.com/joho/godotenv" // loads .env files into the process environment
)

// sellerNames is the closed set of identities allowed to sell. ADMIN is
// the distinguished administrative identity. A seller only exists at
// runtime when its SELLER_<NAME> credential hash is present.
var sellerNames = []string{"JEYNY", "JAIME", "YESSENIA", "VIAINEY", "INA", "AARON", "ADMIN"}

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Store selection decides which LedgerStore
// adapter backs the ledger: "mysql", "sheet" or "memory".
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for the hashpw tool

	Store    string // ledger store kind: mysql | sheet | memory
	SheetURL string // endpoint of the remote sheet service (store=sheet)
	DBUser   string // database username (store=mysql)
	DBPass   string // database password (optional)
	DBHost   string // database host address
	DBPort   string // database port number
	DBName   string // database name

	Sellers map[string]string // seller identity -> bcrypt password hash
}

// Load reads a .env file (when present) and then the environment.
// Required variables are enforced by must() and missing values cause the
// program to exit with a fatal log message. Store-specific variables are
// only required for the selected store.
func Load() Config {
	_ = godotenv.Load() // absence of a .env file is fine

	cfg := Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:   envIntDefault("BCRYPT_COST", 10),
		Store:        envDefault("RAFFLE_STORE", "mysql"),
		Sellers:      loadSellers(),
	}
	switch cfg.Store {
	case "mysql":
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	case "sheet":
		cfg.SheetURL = must("SHEET_URL")
	case "memory":
		// nothing to configure
	default:
		log.Fatalf("unknown RAFFLE_STORE: %q", cfg.Store)
	}
	if len(cfg.Sellers) == 0 {
		log.Fatal("no seller credentials configured (set SELLER_<NAME> vars)")
	}
	return cfg
}

// loadSellers collects SELLER_<NAME> hashes for the closed identity set.
func loadSellers() map[string]string {
	out := make(map[string]string)
	for _, name := range sellerNames {
		if v := os.Getenv("SELLER_" + name); v != "" {
			out[name] = v
		}
	}
	return out
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
