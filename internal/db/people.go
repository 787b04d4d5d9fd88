package db

import (
	"context"
	"strings"
	"time"

	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/store"
	"github.com/google/uuid"
)

// ListPeople returns everyone, ordered by display name
func (db *DB) ListPeople(ctx context.Context) ([]model.Person, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, display_name, avatar_ref, role, created_at
		FROM people
		ORDER BY display_name COLLATE NOCASE
	`)
	if err != nil {
		return nil, store.Wrap("list people", "person", "", err)
	}
	defer rows.Close()

	var people []model.Person
	for rows.Next() {
		var p model.Person
		var avatar, role *string
		if err := rows.Scan(&p.ID, &p.DisplayName, &avatar, &role, &p.CreatedAt); err != nil {
			return nil, store.Wrap("list people", "person", "", err)
		}
		if avatar != nil {
			p.AvatarRef = *avatar
		}
		if role != nil {
			p.Role = *role
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// FindPerson returns the person whose ID or display name matches ref
func (db *DB) FindPerson(ctx context.Context, ref string) (*model.Person, error) {
	people, err := db.ListPeople(ctx)
	if err != nil {
		return nil, err
	}
	for i := range people {
		if people[i].ID == ref || strings.EqualFold(people[i].DisplayName, ref) {
			return &people[i], nil
		}
	}
	return nil, store.Wrap("find person", "person", ref, store.ErrNotFound)
}

// CreatePerson creates a new person
func (db *DB) CreatePerson(ctx context.Context, displayName, role string) (*model.Person, error) {
	id := uuid.New().String()
	now := time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO people (id, display_name, role, created_at) VALUES (?, ?, ?, ?)
	`, id, displayName, role, now)
	if err != nil {
		return nil, store.Wrap("create person", "person", id, classify(err))
	}

	return &model.Person{
		ID:          id,
		DisplayName: displayName,
		Role:        role,
		CreatedAt:   now,
	}, nil
}
