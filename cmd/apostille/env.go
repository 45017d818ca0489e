package main

import (
	"os"
)

// envPrefix is prepended to the name of every environment variable read by
// this program, so APOSTILLE_CONFIG is looked up for "CONFIG".
const envPrefix = "APOSTILLE_"

// env returns the value of the APOSTILLE_ prefixed environment variable.
// A variable that is set but empty still wins over the fallback, so that
// an empty APOSTILLE_PRIVATE_KEY disables a key configured elsewhere.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(envPrefix + name); ok {
		return v
	}
	return fallback
}
