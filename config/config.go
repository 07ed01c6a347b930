package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	// DebugMode indicates service mode is debug.
	DebugMode = "debug"
	// TestMode indicates service mode is test.
	TestMode = "test"
	// ReleaseMode indicates service mode is release.
	ReleaseMode = "release"
)

type Config struct {
	ServiceName string
	HTTPPort    string
	GRPCPort    string

	Environment string // debug, test, release
	Version     string

	JaegerHostPort string

	PostgresHost           string
	PostgresPort           int
	PostgresUser           string
	PostgresPassword       string
	PostgresDatabase       string
	PostgresMaxConnections int32
	MigrationsPath         string

	// ListSnapshot runs count and data queries of list endpoints inside one
	// read-only repeatable read transaction.
	ListSnapshot bool

	JWTSecret    string
	JWTExpiresIn time.Duration

	MinioHost        string
	MinioAccessKeyID string
	MinioSecretKey   string
	MinioBucket      string
	MinioUseSSL      bool

	// EnrollmentExpirySchedule is the cron spec of the job suspending
	// enrollments past their expiry date. Empty disables it.
	EnrollmentExpirySchedule string

	// AdminEmail and AdminPassword seed the first super_admin on startup.
	AdminEmail    string
	AdminPassword string

	CORSOrigin         string
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load ...
func Load() Config {
	if err := godotenv.Load("/app/.env"); err != nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Println(ErrEnvNotFound)
		}
	}

	config := Config{}

	config.ServiceName = cast.ToString(getOrReturnDefaultValue("SERVICE_NAME", "credit_bank_service"))
	config.HTTPPort = cast.ToString(getOrReturnDefaultValue("HTTP_PORT", ":8080"))
	config.GRPCPort = cast.ToString(getOrReturnDefaultValue("GRPC_PORT", ":9090"))

	config.Environment = cast.ToString(getOrReturnDefaultValue("ENVIRONMENT", DebugMode))
	config.Version = cast.ToString(getOrReturnDefaultValue("VERSION", "1.0"))

	config.JaegerHostPort = cast.ToString(getOrReturnDefaultValue("JAEGER_URL", ""))

	config.PostgresHost = cast.ToString(getOrReturnDefaultValue("POSTGRES_HOST", "localhost"))
	config.PostgresPort = cast.ToInt(getOrReturnDefaultValue("POSTGRES_PORT", 5432))
	config.PostgresUser = cast.ToString(getOrReturnDefaultValue("POSTGRES_USER", "postgres"))
	config.PostgresPassword = cast.ToString(getOrReturnDefaultValue("POSTGRES_PASSWORD", ""))
	config.PostgresDatabase = cast.ToString(getOrReturnDefaultValue("POSTGRES_DATABASE", "credit_bank"))
	config.PostgresMaxConnections = cast.ToInt32(getOrReturnDefaultValue("POSTGRES_MAX_CONNECTIONS", 20))
	config.MigrationsPath = cast.ToString(getOrReturnDefaultValue("MIGRATIONS_PATH", "migrations"))

	config.ListSnapshot = cast.ToBool(getOrReturnDefaultValue("LIST_SNAPSHOT", false))

	config.JWTSecret = cast.ToString(getOrReturnDefaultValue("JWT_SECRET", "your-secret-key"))
	config.JWTExpiresIn = cast.ToDuration(getOrReturnDefaultValue("JWT_EXPIRES_IN", "168h"))

	config.MinioHost = cast.ToString(getOrReturnDefaultValue("MINIO_ENDPOINT", "localhost:9000"))
	config.MinioAccessKeyID = cast.ToString(getOrReturnDefaultValue("MINIO_ACCESS_KEY", ""))
	config.MinioSecretKey = cast.ToString(getOrReturnDefaultValue("MINIO_SECRET_KEY", ""))
	config.MinioBucket = cast.ToString(getOrReturnDefaultValue("MINIO_BUCKET", "credit-bank"))
	config.MinioUseSSL = cast.ToBool(getOrReturnDefaultValue("MINIO_USE_SSL", false))

	config.EnrollmentExpirySchedule = cast.ToString(getOrReturnDefaultValue("ENROLLMENT_EXPIRY_SCHEDULE", "0 0 * * *"))

	config.AdminEmail = cast.ToString(getOrReturnDefaultValue("ADMIN_EMAIL", ""))
	config.AdminPassword = cast.ToString(getOrReturnDefaultValue("ADMIN_PASSWORD", ""))

	config.CORSOrigin = cast.ToString(getOrReturnDefaultValue("CORS_ORIGIN", "*"))
	config.RateLimitPerMinute = cast.ToInt(getOrReturnDefaultValue("RATE_LIMIT_PER_MINUTE", 600))
	config.RateLimitBurst = cast.ToInt(getOrReturnDefaultValue("RATE_LIMIT_BURST", 100))

	return config
}

func getOrReturnDefaultValue(key string, defaultValue any) any {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return defaultValue
}
