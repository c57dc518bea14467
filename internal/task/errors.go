package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrEmptyTitle   = errors.New("task title is empty")
	ErrEmptyTagName = errors.New("tag name is empty")
	ErrTaskNotFound = errors.New("task not found")
	ErrTagNotFound  = errors.New("tag not found")
)
