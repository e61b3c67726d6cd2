package session

import "time"

func nowUnixNano() int64 {
	return time.Now().UTC().UnixNano()
}

func unixNanoTime(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}
