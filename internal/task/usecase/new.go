package usecase

import (
	"time"

	"github.com/JellyPork/bunflow/internal/quickadd"
	"github.com/JellyPork/bunflow/internal/reminder"
	"github.com/JellyPork/bunflow/internal/task/repository"
	pkgLog "github.com/JellyPork/bunflow/pkg/log"
)

// defaultReminderBody is used when the caller supplies no body text.
const defaultReminderBody = "Bunflow reminder"

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.TaskRepository
	tags      repository.TagRegistry
	scheduler reminder.Scheduler
	parser    *quickadd.Parser
	clock     func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	tags repository.TagRegistry,
	scheduler reminder.Scheduler,
	parser *quickadd.Parser,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		tags:      tags,
		scheduler: scheduler,
		parser:    parser,
		clock:     time.Now,
	}
}
