package db

import (
	"context"
	"time"

	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/store"
	"github.com/google/uuid"
)

// NewTask holds the fields needed to create a task
type NewTask struct {
	ProjectID   string
	Title       string
	Description string
	Deadline    *time.Time
	Priority    model.Priority
}

// ListTasks returns the tasks of a project with their assignees
func (db *DB) ListTasks(ctx context.Context, projectID string) ([]model.Task, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, project_id, title, description, deadline, priority, status, created_at, updated_at
		FROM tasks
		WHERE project_id = ?
		ORDER BY
			CASE priority
				WHEN 'critical' THEN 0
				WHEN 'high' THEN 1
				WHEN 'medium' THEN 2
				WHEN 'low' THEN 3
			END,
			created_at
	`, projectID)
	if err != nil {
		return nil, store.Wrap("list tasks", "project", projectID, err)
	}

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var description, deadline *string
		err := rows.Scan(
			&t.ID, &t.ProjectID, &t.Title, &description, &deadline,
			&t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			rows.Close()
			return nil, store.Wrap("list tasks", "project", projectID, err)
		}
		if description != nil {
			t.Description = *description
		}
		t.Deadline = parseDate(deadline)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, store.Wrap("list tasks", "project", projectID, err)
	}
	rows.Close()

	assignees, err := db.taskAssignees(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].Assignees = assignees[tasks[i].ID]
	}

	return tasks, nil
}

// GetTask returns a single task by ID
func (db *DB) GetTask(ctx context.Context, id string) (*model.Task, error) {
	var t model.Task
	var description, deadline *string

	err := db.QueryRowContext(ctx, `
		SELECT id, project_id, title, description, deadline, priority, status, created_at, updated_at
		FROM tasks WHERE id = ?
	`, id).Scan(&t.ID, &t.ProjectID, &t.Title, &description, &deadline,
		&t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, store.Wrap("get task", "task", id, classify(err))
	}
	if description != nil {
		t.Description = *description
	}
	t.Deadline = parseDate(deadline)

	rows, err := db.QueryContext(ctx, `
		SELECT person_id FROM task_assignments WHERE task_id = ? ORDER BY person_id
	`, id)
	if err != nil {
		return nil, store.Wrap("get task", "task", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var personID string
		if err := rows.Scan(&personID); err != nil {
			return nil, store.Wrap("get task", "task", id, err)
		}
		t.Assignees = append(t.Assignees, personID)
	}

	return &t, rows.Err()
}

// CreateTask creates a new task in a project
func (db *DB) CreateTask(ctx context.Context, nt NewTask) (*model.Task, error) {
	id := uuid.New().String()
	now := time.Now()

	if nt.Priority == "" {
		nt.Priority = model.PriorityMedium
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO tasks (id, project_id, title, description, deadline, priority, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 'pending', ?, ?)
	`, id, nt.ProjectID, nt.Title, nt.Description, formatDate(nt.Deadline), nt.Priority, now, now)
	if err != nil {
		return nil, store.Wrap("create task", "task", id, classify(err))
	}

	return &model.Task{
		ID:          id,
		ProjectID:   nt.ProjectID,
		Title:       nt.Title,
		Description: nt.Description,
		Deadline:    nt.Deadline,
		Priority:    nt.Priority,
		Status:      model.TaskPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateTaskStatus moves a task to another status
func (db *DB) UpdateTaskStatus(ctx context.Context, taskID string, status model.TaskStatus) error {
	res, err := db.ExecContext(ctx, `
		UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?
	`, status, time.Now(), taskID)
	return store.Wrap("update task status", "task", taskID, classify(mustAffect(res, err)))
}

// FindTask returns the task whose ID or title matches ref
func (db *DB) FindTask(ctx context.Context, ref string) (*model.Task, error) {
	var id string
	err := db.QueryRowContext(ctx, `
		SELECT id FROM tasks WHERE id = ? OR title = ? COLLATE NOCASE
		ORDER BY created_at DESC LIMIT 1
	`, ref, ref).Scan(&id)
	if err != nil {
		return nil, store.Wrap("find task", "task", ref, classify(err))
	}
	return db.GetTask(ctx, id)
}
