package models

import "time"

// ScanRecord is one successful decode emitted by the scanner engine.
// Timestamp is epoch milliseconds. Records live only in the in-memory
// scan history and are never persisted.
type ScanRecord struct {
	ID        string `json:"id"`
	RawData   string `json:"rawData"`
	Timestamp int64  `json:"timestamp"`
	Format    string `json:"format,omitempty"`
}

// NewScanTimestamp returns the current epoch-millisecond timestamp.
func NewScanTimestamp() int64 {
	return time.Now().UnixMilli()
}
