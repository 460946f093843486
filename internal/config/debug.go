package config

import "os"

func IsDebug() bool {
	return os.Getenv("TRACKMATE_DEBUG") == "1"
}
