package memory

import (
	"sync"
	"time"

	"gantt-timeline/internal/gantt/repository"
	"gantt-timeline/internal/model"
	"gantt-timeline/pkg/log"
)

type implRepository struct {
	l        log.Logger
	maxTasks int
	now      func() time.Time

	mu      sync.RWMutex
	tasks   []model.Task // row order
	version uint64
}

// New creates an in-memory task board holding at most maxTasks rows.
func New(l log.Logger, maxTasks int) repository.Repository {
	if maxTasks <= 0 {
		panic("gantt/repository/memory: maxTasks must be positive")
	}
	return &implRepository{
		l:        l,
		maxTasks: maxTasks,
		now:      time.Now,
	}
}

// indexOf must be called with mu held.
func (r *implRepository) indexOf(id string) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
