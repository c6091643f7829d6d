package types

import "errors"

// Failure categories surfaced to the user as transient notifications.
// Extraction degradation has no error: extractors fall back to defaults.
var (
	ErrAuthFailure      = errors.New("authentication failed")
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrDataStore        = errors.New("data store operation failed")
	ErrGenerationFailed = errors.New("generation failed")
	ErrNotFound         = errors.New("not found")
	ErrNameRequired     = errors.New("project name is required")
	ErrPlanNotFound     = errors.New("plan not found or expired")
	ErrPromptRequired   = errors.New("prompt is required")
	ErrNoOpenProject    = errors.New("no project is open")
)
