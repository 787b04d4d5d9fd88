package reassign

import (
	"context"
	"fmt"
	"slices"

	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/priority"
)

// plan picks the rule for a (payload, target) pair, applies its patch and
// returns the pending write. nil means nothing to do.
func (r *Resolver) plan(drop drag.Drop) *Pending {
	t := drop.Target

	switch p := drop.Payload.(type) {
	case drag.ProjectPayload:
		switch t.Kind {
		case drag.TargetPriority:
			return r.projectPriority(p.ProjectID, model.Priority(t.Value))
		case drag.TargetStatus:
			return r.projectStatus(p.ProjectID, model.ProjectStatus(t.Value))
		case drag.TargetPerson:
			return r.projectOwner(p.ProjectID, t.Value)
		}
	case drag.TaskPayload:
		if t.Kind == drag.TargetStatus {
			return r.taskStatus(p.TaskID, model.TaskStatus(t.Value))
		}
	case drag.PersonPayload:
		switch t.Kind {
		case drag.TargetProject:
			return r.addMember(t.Value, p.PersonID)
		case drag.TargetTask:
			return r.assignTask(t.Value, p.PersonID)
		}
	}
	return nil
}

func (r *Resolver) findProject(id string) (model.Project, bool) {
	i := r.projects.Find(func(p model.Project) bool { return p.ID == id })
	if i < 0 {
		return model.Project{}, false
	}
	return r.projects.Items()[i], true
}

func (r *Resolver) findTask(id string) (model.Task, bool) {
	i := r.tasks.Find(func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return model.Task{}, false
	}
	return r.tasks.Items()[i], true
}

// patchProject applies fn to the project with the given ID
func (r *Resolver) patchProject(id string, fn func(*model.Project)) *Pending {
	tok := r.projects.Apply(func(items []model.Project) []model.Project {
		for i := range items {
			if items[i].ID == id {
				fn(&items[i])
			}
		}
		return items
	})
	return &Pending{project: tok, Refetch: RefetchProjects}
}

func (r *Resolver) patchTask(id string, fn func(*model.Task)) *Pending {
	tok := r.tasks.Apply(func(items []model.Task) []model.Task {
		for i := range items {
			if items[i].ID == id {
				fn(&items[i])
			}
		}
		return items
	})
	// Task changes move project progress too
	return &Pending{task: tok, Refetch: RefetchTasks | RefetchProjects}
}

func (r *Resolver) projectPriority(id string, lane model.Priority) *Pending {
	if !lane.ValidForProject() || lane == model.PriorityAuto {
		return nil
	}
	proj, ok := r.findProject(id)
	if !ok || proj.Priority == lane || priority.ForProject(r.now(), &proj) == lane {
		return nil
	}

	p := r.patchProject(id, func(p *model.Project) { p.Priority = lane })
	p.call = func(ctx context.Context) error {
		return r.store.UpdateProjectPriority(ctx, id, lane)
	}
	p.success = fmt.Sprintf("%s moved to %s", proj.Name, lane.Label())

	// A close deadline keeps the card in a higher lane
	proj.Priority = lane
	if eff := priority.Bucket(priority.ForProject(r.now(), &proj)); eff != lane {
		p.success = fmt.Sprintf("%s set to %s, kept in %s by its deadline", proj.Name, lane.Label(), eff.Label())
	}
	p.failure = "could not change project priority"
	return p
}

func (r *Resolver) projectStatus(id string, status model.ProjectStatus) *Pending {
	if !status.Valid() {
		return nil
	}
	proj, ok := r.findProject(id)
	if !ok || proj.Status == status {
		return nil
	}

	p := r.patchProject(id, func(p *model.Project) { p.Status = status })
	p.call = func(ctx context.Context) error {
		return r.store.UpdateProjectStatus(ctx, id, status)
	}
	p.success = fmt.Sprintf("%s moved to %s", proj.Name, status.Label())
	p.failure = "could not move project"
	return p
}

// projectOwner makes person the single member of the project, or clears
// every member for the unassigned bucket.
func (r *Resolver) projectOwner(id, person string) *Pending {
	if person == "" {
		return nil
	}
	proj, ok := r.findProject(id)
	if !ok {
		return nil
	}

	var owner *string
	var members []string
	if person != drag.Unassigned {
		owner = &person
		members = []string{person}
	}
	if slices.Equal(proj.Members, members) {
		return nil
	}

	p := r.patchProject(id, func(p *model.Project) { p.Members = members })
	p.call = func(ctx context.Context) error {
		return r.store.ReplaceProjectMembers(ctx, id, owner)
	}
	if owner == nil {
		p.success = fmt.Sprintf("%s is now unassigned", proj.Name)
	} else {
		p.success = fmt.Sprintf("%s reassigned to %s", proj.Name, r.personName(person))
	}
	p.failure = "could not reassign project"
	return p
}

func (r *Resolver) taskStatus(id string, status model.TaskStatus) *Pending {
	if !status.Valid() {
		return nil
	}
	task, ok := r.findTask(id)
	if !ok || task.Status == status {
		return nil
	}

	p := r.patchTask(id, func(t *model.Task) { t.Status = status })
	p.call = func(ctx context.Context) error {
		return r.store.UpdateTaskStatus(ctx, id, status)
	}
	p.success = fmt.Sprintf("%s moved to %s", task.Title, status.Label())
	p.failure = "could not move task"
	return p
}

func (r *Resolver) addMember(projectID, person string) *Pending {
	proj, ok := r.findProject(projectID)
	if !ok || proj.HasMember(person) {
		return nil
	}

	p := r.patchProject(projectID, func(p *model.Project) {
		if !p.HasMember(person) {
			p.Members = append(p.Members, person)
		}
	})
	p.call = func(ctx context.Context) error {
		return r.store.UpsertProjectMember(ctx, projectID, person)
	}
	p.success = fmt.Sprintf("%s added to %s", r.personName(person), proj.Name)
	p.failure = "could not add project member"
	return p
}

func (r *Resolver) assignTask(taskID, person string) *Pending {
	task, ok := r.findTask(taskID)
	if !ok || task.IsAssigned(person) {
		return nil
	}

	p := r.patchTask(taskID, func(t *model.Task) {
		if !t.IsAssigned(person) {
			t.Assignees = append(t.Assignees, person)
		}
	})
	p.Refetch = RefetchTasks
	p.call = func(ctx context.Context) error {
		return r.store.UpsertTaskAssignment(ctx, taskID, person)
	}
	p.success = fmt.Sprintf("%s assigned to %s", r.personName(person), task.Title)
	p.failure = "could not assign task"
	return p
}
