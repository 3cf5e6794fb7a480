package usecase

import (
	"time"

	"escalation-srv/internal/escalation"
	"escalation-srv/internal/hierarchy"
	"escalation-srv/internal/rule"
	"escalation-srv/pkg/log"
)

// Config tunes the escalation engine.
type Config struct {
	// Location is where weekday checks for excludeWeekends happen. Defaults to UTC.
	Location *time.Location
	// Picker selects among active members. Defaults to round-robin.
	Picker Picker
}

type implUseCase struct {
	logger    log.Logger
	rules     *rule.Set
	directory hierarchy.Directory
	location  *time.Location
	picker    Picker
}

// New builds the escalation engine over an explicit rule set and directory.
func New(logger log.Logger, rules *rule.Set, directory hierarchy.Directory, cfg Config) escalation.UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Picker == nil {
		cfg.Picker = NewRoundRobinPicker()
	}

	return &implUseCase{
		logger:    logger,
		rules:     rules,
		directory: directory,
		location:  cfg.Location,
		picker:    cfg.Picker,
	}
}
