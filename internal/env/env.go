package env

import (
	"os"
)

const (
	HTTPAddr         = "HTTP_ADDR"
	StoreBackend     = "STORE_BACKEND"
	AWSRegion        = "AWS_REGION"
	AWSID            = "AWS_ID"
	AWSSecret        = "AWS_SECRET"
	AWSToken         = "AWS_TOKEN"
	DynamoDBEndpoint = "DYNAMODB_ENDPOINT"
	EventRedisURL    = "EVENT_REDIS_URL"
	EventRedisPass   = "EVENT_REDIS_PASS"
	WebUrl           = "WEB_URL"
)

// The memory backend is the default and must boot with no environment at all,
// so nothing is validated at init time. Backends that genuinely need a key
// call MustGet themselves.

func Get(key string) string {
	return os.Getenv(key)
}

func GetOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func MustGet(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("env: required environment variable not set: " + key)
	}
	return val
}
