package common

import (
	"math"
	"os"
	"strconv"
	"time"
)

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

// GetEnvInt reads an int env value, falling back to def when unset or malformed.
func GetEnvInt(key string, def int) int {
	v, found := os.LookupEnv(key)
	if !found {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetEnvDuration reads a time.ParseDuration value such as "24h". Zero when unset.
func GetEnvDuration(key string) (time.Duration, error) {
	v, found := os.LookupEnv(key)
	if !found || v == "" {
		return 0, nil
	}
	return time.ParseDuration(v)
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := range len(items) {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	finalAcc := initAcc
	for i := range len(items) {
		finalAcc = reduceFn(finalAcc, items[i])
	}
	return finalAcc
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
