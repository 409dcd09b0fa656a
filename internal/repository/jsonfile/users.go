package jsonfile

import (
	"context"
	"time"

	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/repository"
	"github.com/hirebridge/hirebridge/internal/store"
)

type Users struct {
	store *store.Store
}

func NewUsers(s *store.Store) *Users {
	return &Users{store: s}
}

func (r *Users) ListAll(ctx context.Context) ([]models.User, error) {
	records, err := r.store.ReadAll(usersCollection)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.User](records)
}

func (r *Users) GetByID(ctx context.Context, id string) (*models.User, error) {
	records, err := r.store.ReadAll(usersCollection)
	if err != nil {
		return nil, err
	}
	rec := store.FindByID(records, id)
	if rec == nil {
		return nil, repository.ErrNotFound
	}
	return decodeOne[models.User](rec)
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	records, err := r.store.ReadAll(usersCollection)
	if err != nil {
		return nil, err
	}
	matches := store.FindByFields(records, map[string]any{"email": email})
	if len(matches) == 0 {
		return nil, repository.ErrNotFound
	}
	return decodeOne[models.User](matches[0])
}

// Create rejects a second account with the same email. Like the
// application duplicate check, scan and append share one critical section.
func (r *Users) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = store.GenerateID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	rec, err := store.ToRecord(user)
	if err != nil {
		return nil, err
	}
	err = r.store.Update(usersCollection, func(records []store.Record) ([]store.Record, error) {
		for _, existing := range records {
			if existing["email"] == user.Email {
				return nil, repository.ErrUserExists
			}
		}
		return append(records, rec), nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *Users) Update(ctx context.Context, id string, patch map[string]any) (*models.User, error) {
	var updated *models.User
	err := r.store.Update(usersCollection, func(records []store.Record) ([]store.Record, error) {
		for i, rec := range records {
			if rec["_id"] != id {
				continue
			}
			for k, v := range patch {
				rec[k] = v
			}
			rec["updatedAt"] = nowStamp()
			records[i] = rec
			var err error
			updated, err = decodeOne[models.User](rec)
			return records, err
		}
		return nil, repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Users) Delete(ctx context.Context, id string) error {
	return r.store.Update(usersCollection, func(records []store.Record) ([]store.Record, error) {
		for i, rec := range records {
			if rec["_id"] == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, repository.ErrNotFound
	})
}
