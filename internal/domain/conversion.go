package domain

import "time"

type Conversion struct {
	ID         string     `csv:"id"          db:"id"          json:"id"`
	Filename   string     `csv:"filename"    db:"filename"    json:"filename"`
	SizeBytes  int64      `csv:"size_bytes"  db:"size_bytes"  json:"size_bytes"`
	Status     Status     `csv:"status"      db:"status"      json:"status"`
	Message    string     `csv:"message"     db:"message"     json:"message"`
	CreatedAt  time.Time  `csv:"created_at"  db:"created_at"  json:"created_at"`
	FinishedAt *time.Time `csv:"finished_at" db:"finished_at" json:"finished_at,omitempty"`
}
