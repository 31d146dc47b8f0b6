package config

import "os"

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Addr() string {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok {
		return ":8080"
	}
	return addr
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
