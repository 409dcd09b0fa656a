// Package jsonfile implements the repository contracts on top of the
// JSON-file record store. Every write goes through store.Update so
// check-then-write sequences hold under concurrent requests.
package jsonfile

import (
	"time"

	"github.com/hirebridge/hirebridge/internal/store"
)

const (
	jobsCollection         = "jobs"
	applicationsCollection = "applications"
	usersCollection        = "users"
)

func decodeAll[T any](records []store.Record) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		var v T
		if err := store.FromRecord(r, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeOne[T any](r store.Record) (*T, error) {
	var v T
	if err := store.FromRecord(r, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
