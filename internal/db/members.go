package db

import (
	"context"
	"database/sql"

	"github.com/dori/tablero/internal/store"
)

var (
	_ store.AssignmentStore = (*DB)(nil)
	_ store.Reader          = (*DB)(nil)
)

// ReplaceProjectMembers removes every member of a project and, if personID
// is set, makes that person the only member. Both steps share a transaction.
func (db *DB) ReplaceProjectMembers(ctx context.Context, projectID string, personID *string) error {
	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM projects WHERE id = ?`, projectID).Scan(&exists); err != nil {
			return classify(err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM project_members WHERE project_id = ?`, projectID); err != nil {
			return err
		}

		if personID == nil {
			return nil
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO project_members (project_id, person_id) VALUES (?, ?)
		`, projectID, *personID)
		return classify(err)
	})
	return store.Wrap("replace project members", "project", projectID, err)
}

// UpsertProjectMember adds a person to a project, keeping existing members
func (db *DB) UpsertProjectMember(ctx context.Context, projectID, personID string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO project_members (project_id, person_id) VALUES (?, ?)
		ON CONFLICT(project_id, person_id) DO NOTHING
	`, projectID, personID)
	return store.Wrap("upsert project member", "project", projectID, classify(err))
}

// UpsertTaskAssignment assigns a person to a task, keeping existing assignees
func (db *DB) UpsertTaskAssignment(ctx context.Context, taskID, personID string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO task_assignments (task_id, person_id) VALUES (?, ?)
		ON CONFLICT(task_id, person_id) DO NOTHING
	`, taskID, personID)
	return store.Wrap("upsert task assignment", "task", taskID, classify(err))
}

// projectMembers returns person IDs per project ID
func (db *DB) projectMembers(ctx context.Context) (map[string][]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT project_id, person_id FROM project_members ORDER BY project_id, person_id
	`)
	if err != nil {
		return nil, store.Wrap("list project members", "project", "", err)
	}
	defer rows.Close()

	members := make(map[string][]string)
	for rows.Next() {
		var projectID, personID string
		if err := rows.Scan(&projectID, &personID); err != nil {
			return nil, store.Wrap("list project members", "project", "", err)
		}
		members[projectID] = append(members[projectID], personID)
	}
	return members, rows.Err()
}

// taskAssignees returns person IDs per task ID for one project
func (db *DB) taskAssignees(ctx context.Context, projectID string) (map[string][]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT ta.task_id, ta.person_id
		FROM task_assignments ta
		JOIN tasks t ON t.id = ta.task_id
		WHERE t.project_id = ?
		ORDER BY ta.task_id, ta.person_id
	`, projectID)
	if err != nil {
		return nil, store.Wrap("list task assignments", "project", projectID, err)
	}
	defer rows.Close()

	assignees := make(map[string][]string)
	for rows.Next() {
		var taskID, personID string
		if err := rows.Scan(&taskID, &personID); err != nil {
			return nil, store.Wrap("list task assignments", "project", projectID, err)
		}
		assignees[taskID] = append(assignees[taskID], personID)
	}
	return assignees, rows.Err()
}
