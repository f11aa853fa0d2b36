package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr         string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	// Auth / Security
	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	// Infrastructure
	DBAddr  string
	DBDebug bool

	// Redis cache (optional; cache is disabled when unset/unreachable)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Media host (S3-compatible)
	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Bucket          string
	S3UsePathStyle    bool
	CDNBaseURL        string
	MaxUploadSize     int64

	// Rate limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// required values
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET")
	}

	// The service cannot operate without its database; fail fast instead of
	// starting in a partially-initialized state.
	cfg.DBAddr = os.Getenv("DB_ADDR")
	if cfg.DBAddr == "" {
		return nil, fmt.Errorf("missing required env var: DB_ADDR")
	}
	cfg.DBDebug = getBool("DB_DEBUG", false)

	cfg.JWTIssuer = getEnv("JWT_ISSUER", "ecommerce-api")

	ttl, err := getDuration("TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	// Media host credentials are required: product creation uploads there.
	cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")
	if cfg.S3Endpoint == "" {
		return nil, fmt.Errorf("missing required env var: S3_ENDPOINT")
	}
	cfg.S3AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	if cfg.S3AccessKeyID == "" {
		return nil, fmt.Errorf("missing required env var: S3_ACCESS_KEY_ID")
	}
	cfg.S3SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	if cfg.S3SecretAccessKey == "" {
		return nil, fmt.Errorf("missing required env var: S3_SECRET_ACCESS_KEY")
	}
	cfg.S3Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3Bucket = getEnv("S3_BUCKET", "products")
	cfg.S3UsePathStyle = getBool("S3_USE_PATH_STYLE", true)
	cfg.CDNBaseURL = getEnv("CDN_BASE_URL", cfg.S3Endpoint+"/"+cfg.S3Bucket)

	mus, err := getInt64("MAX_UPLOAD_SIZE", 2<<20)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadSize = mus

	// optional infrastructure
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	rdb, err := getInt64("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cfg.RedisDB = int(rdb)

	ct, err := getDuration("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = ct

	// rate limiting
	cfg.RLEnabled = getBool("RATE_LIMIT_ENABLED", false)
	rl, err := getInt64("RATE_LIMIT", 100)
	if err != nil {
		return nil, err
	}
	cfg.RLLimit = int(rl)
	rw, err := getDuration("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.RLWindow = rw

	// Timeout values are optional and have defaults.
	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, v, err)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}
