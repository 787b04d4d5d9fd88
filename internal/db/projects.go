package db

import (
	"context"
	"time"

	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/store"
	"github.com/google/uuid"
)

// NewProject holds the fields needed to create a project
type NewProject struct {
	Name     string
	Client   string
	Deadline *time.Time
	Priority model.Priority
	Status   model.ProjectStatus
}

// ListProjects returns projects with their members and task stats.
// Completed projects are left out unless includeCompleted is set.
func (db *DB) ListProjects(ctx context.Context, includeCompleted bool) ([]model.Project, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT p.id, p.name, p.client, p.deadline, p.priority, p.status, p.quick_note,
		       p.created_at, p.updated_at,
		       (SELECT COUNT(*) FROM tasks WHERE project_id = p.id) as total_tasks,
		       (SELECT COUNT(*) FROM tasks WHERE project_id = p.id
		            AND status IN ('approved', 'delivered')) as completed_tasks
		FROM projects p
		WHERE ? OR p.status != 'completed'
		ORDER BY p.created_at DESC
	`, includeCompleted)
	if err != nil {
		return nil, store.Wrap("list projects", "project", "", err)
	}

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		var client, deadline, note *string
		err := rows.Scan(
			&p.ID, &p.Name, &client, &deadline, &p.Priority, &p.Status, &note,
			&p.CreatedAt, &p.UpdatedAt, &p.TotalTasks, &p.CompletedTasks,
		)
		if err != nil {
			rows.Close()
			return nil, store.Wrap("list projects", "project", "", err)
		}
		if client != nil {
			p.Client = *client
		}
		if note != nil {
			p.QuickNote = *note
		}
		p.Deadline = parseDate(deadline)
		if p.TotalTasks > 0 {
			p.Progress = p.CompletedTasks * 100 / p.TotalTasks
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, store.Wrap("list projects", "project", "", err)
	}
	rows.Close()

	// Members are loaded after rows is closed (single connection pool)
	members, err := db.projectMembers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Members = members[projects[i].ID]
	}

	return projects, nil
}

// GetProject returns a single project by ID
func (db *DB) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	var client, deadline, note *string

	err := db.QueryRowContext(ctx, `
		SELECT id, name, client, deadline, priority, status, quick_note, created_at, updated_at
		FROM projects WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &client, &deadline, &p.Priority, &p.Status, &note, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, store.Wrap("get project", "project", id, classify(err))
	}

	if client != nil {
		p.Client = *client
	}
	if note != nil {
		p.QuickNote = *note
	}
	p.Deadline = parseDate(deadline)

	rows, err := db.QueryContext(ctx, `
		SELECT person_id FROM project_members WHERE project_id = ? ORDER BY person_id
	`, id)
	if err != nil {
		return nil, store.Wrap("get project", "project", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var personID string
		if err := rows.Scan(&personID); err != nil {
			return nil, store.Wrap("get project", "project", id, err)
		}
		p.Members = append(p.Members, personID)
	}

	return &p, rows.Err()
}

// CreateProject creates a new project
func (db *DB) CreateProject(ctx context.Context, np NewProject) (*model.Project, error) {
	id := uuid.New().String()
	now := time.Now()

	if np.Priority == "" {
		np.Priority = model.PriorityAuto
	}
	if np.Status == "" {
		np.Status = model.ProjectPending
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO projects (id, name, client, deadline, priority, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, np.Name, np.Client, formatDate(np.Deadline), np.Priority, np.Status, now, now)
	if err != nil {
		return nil, store.Wrap("create project", "project", id, classify(err))
	}

	return &model.Project{
		ID:        id,
		Name:      np.Name,
		Client:    np.Client,
		Deadline:  np.Deadline,
		Priority:  np.Priority,
		Status:    np.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateProjectPriority sets a project's manual priority
func (db *DB) UpdateProjectPriority(ctx context.Context, projectID string, priority model.Priority) error {
	res, err := db.ExecContext(ctx, `
		UPDATE projects SET priority = ?, updated_at = ? WHERE id = ?
	`, priority, time.Now(), projectID)
	return store.Wrap("update project priority", "project", projectID, classify(mustAffect(res, err)))
}

// UpdateProjectStatus moves a project to another status
func (db *DB) UpdateProjectStatus(ctx context.Context, projectID string, status model.ProjectStatus) error {
	res, err := db.ExecContext(ctx, `
		UPDATE projects SET status = ?, updated_at = ? WHERE id = ?
	`, status, time.Now(), projectID)
	return store.Wrap("update project status", "project", projectID, classify(mustAffect(res, err)))
}

// FindProject returns the project whose ID or name matches ref
func (db *DB) FindProject(ctx context.Context, ref string) (*model.Project, error) {
	var id string
	err := db.QueryRowContext(ctx, `
		SELECT id FROM projects WHERE id = ? OR name = ? COLLATE NOCASE
		ORDER BY created_at DESC LIMIT 1
	`, ref, ref).Scan(&id)
	if err != nil {
		return nil, store.Wrap("find project", "project", ref, classify(err))
	}
	return db.GetProject(ctx, id)
}
