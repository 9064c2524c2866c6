package errorvalues

import "errors"

var (
	ErrTaskNotFound      = errors.New("task doesn't exist")
	ErrDailyTaskNotFound = errors.New("daily task doesn't exist")
	ErrAlreadyScheduled  = errors.New("task already scheduled for this day")
	ErrInvalidStatus     = errors.New("unknown task status")

	ErrSelfParent    = errors.New("a task cannot be its own parent")
	ErrNestedSubtask = errors.New("cannot nest subtasks more than one level deep")
	ErrHasSubtasks   = errors.New("cannot make a task with subtasks into a subtask")

	ErrChallengeNotFound = errors.New("no challenge recorded for this date")
	ErrChallengeExists   = errors.New("challenge already recorded for this date")

	ErrAchievementUnlocked = errors.New("achievement already unlocked")

	ErrNotEnoughData = errors.New("not enough history for this window")
)
