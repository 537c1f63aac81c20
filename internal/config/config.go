package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret         string
	Issuer            string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	ServerPort        string
	BaseURL           string
	CORSOrigins       []string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	EventStreamKey    string
	BuildSystem       string
	KojiURL           string
	KojiCertFile      string
	KojiKeyFile       string
	PolicyFile        string
	SchedulerInterval time.Duration
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "bodhi")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "bodhi")
	ServerPort = getEnv("SERVER_PORT", "8080")
	BaseURL = getEnv("BASE_URL", "https://bodhi.fedoraproject.org")
	CORSOrigins = getList("CORS_ORIGINS", []string{"*"})

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getInt("REDIS_DB", 0)
	EventStreamKey = getEnv("EVENT_STREAM_KEY", "bodhi:events")

	BuildSystem = getEnv("BUILDSYSTEM", "dev")
	KojiURL = getEnv("KOJI_URL", "https://koji.fedoraproject.org/kojihub")
	KojiCertFile = getEnv("KOJI_CERT_FILE", "")
	KojiKeyFile = getEnv("KOJI_KEY_FILE", "")

	PolicyFile = getEnv("POLICY_FILE", "")
	SchedulerInterval = getDuration("SCHEDULER_INTERVAL", time.Hour)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid integer for %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] invalid boolean for %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] invalid duration for %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
