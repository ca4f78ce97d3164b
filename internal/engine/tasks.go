package engine

import "github.com/xvierd/focusnest/internal/domain"

// AddTask creates a task, appends it to the ordered list, persists, and
// returns a copy of the created task.
func (e *Engine) AddTask(title string, estimatedPomodoros int) domain.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	task := domain.NewTask(title, estimatedPomodoros)
	e.tasks = append(e.tasks, task)
	e.persistLocked()
	return *task
}

// UpdateTask merges the patch into the matching task. An unknown id is a
// silent no-op, not an error.
func (e *Engine) UpdateTask(id string, patch domain.TaskPatch) {
	e.mu.Lock()
	defer e.mu.Unlock()
	task := e.findTaskLocked(id)
	if task == nil {
		return
	}
	task.Apply(patch)
	e.persistLocked()
}

// DeleteTask removes the task. Deleting the active task clears the
// active-task reference.
func (e *Engine) DeleteTask(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.tasks[:0]
	for _, t := range e.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	e.tasks = kept
	if e.activeTaskID != nil && *e.activeTaskID == id {
		e.activeTaskID = nil
	}
	e.persistLocked()
}

// SetActiveTask selects the task newly started pomodoros are attributed to,
// or clears the selection when id is nil. Existence is not validated here;
// read sites tolerate a dangling reference.
func (e *Engine) SetActiveTask(id *string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if id == nil {
		e.activeTaskID = nil
	} else {
		v := *id
		e.activeTaskID = &v
	}
	e.persistLocked()
}

// Tasks returns a copy of the task list in insertion order.
func (e *Engine) Tasks() []domain.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Task, len(e.tasks))
	for i, t := range e.tasks {
		out[i] = *t
	}
	return out
}

// ActiveTaskID returns the active-task reference, or nil.
func (e *Engine) ActiveTaskID() *string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.activeTaskID == nil {
		return nil
	}
	v := *e.activeTaskID
	return &v
}

// ActiveTask returns a copy of the active task, or nil when no task is
// selected or the reference dangles.
func (e *Engine) ActiveTask() *domain.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.activeTaskID == nil {
		return nil
	}
	t := e.findTaskLocked(*e.activeTaskID)
	if t == nil {
		return nil
	}
	out := *t
	return &out
}

// CompletedTasks returns copies of the tasks marked completed.
func (e *Engine) CompletedTasks() []domain.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []domain.Task
	for _, t := range e.tasks {
		if t.Completed {
			out = append(out, *t)
		}
	}
	return out
}

func (e *Engine) findTaskLocked(id string) *domain.Task {
	for _, t := range e.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
