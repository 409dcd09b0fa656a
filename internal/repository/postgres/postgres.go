// Package postgres implements the repository contracts on gorm. The
// duplicate-application rule lives in the composite unique index on
// (job_id, applicant_email), so it holds across processes, not just within
// one like the file backend's mutex.
package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hirebridge/hirebridge/internal/repository"
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

// whereFromFilter maps the JSON field names clients filter by onto columns.
// Only known fields are accepted; a typo should fail loudly, not return
// everything.
func whereFromFilter(filter map[string]any, columns map[string]string) (map[string]any, error) {
	where := make(map[string]any, len(filter))
	for k, v := range filter {
		col, ok := columns[k]
		if !ok {
			return nil, fmt.Errorf("unsupported filter field %q", k)
		}
		where[col] = v
	}
	return where, nil
}
