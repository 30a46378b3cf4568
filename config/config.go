package config

import (
	"os"
	"strconv"
	"strings"
)

// Keys read from the environment. Documented here so the deployment surface
// stays in one place.
const (
	KeyPort            = "PORT"
	KeyJWTSecret       = "JWT_SECRET"
	KeyAcceptedOrigins = "ACCEPTED_ORIGINS"
	KeyImageStore      = "IMAGE_STORE" // "disk" (default) or "s3"
	KeyMediaRoot       = "MEDIA_ROOT"
	KeyS3Bucket        = "S3_BUCKET"
	KeyS3Prefix        = "S3_PREFIX"
	KeyS3Region        = "S3_REGION"
)

// New snapshots the process environment into a plain map. Handlers never read
// the environment directly; everything goes through this snapshot taken at
// startup.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
