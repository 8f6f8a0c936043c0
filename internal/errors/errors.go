package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeCatalog       ErrorType = "CATALOG"
	TypePrompt        ErrorType = "PROMPT"
	TypeGit           ErrorType = "GIT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on type and message, so copies derived through the With* helpers
// still satisfy errors.Is against the sentinel they came from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrConfigLoad = NewAppError(TypeConfiguration, "Failed to load preferences, using defaults", nil).
			WithSuggestion("Run: gittr reconfig")

	ErrConfigWrite = NewAppError(TypeConfiguration, "Failed to save preferences", nil).
			WithSuggestion("Check that ~/.gittr is writable")

	ErrHomeDir = NewAppError(TypeConfiguration, "Failed to resolve the home directory", nil).
			WithSuggestion("Make sure $HOME is set")
)

// Catalog errors
var (
	ErrCatalogFetch = NewAppError(TypeCatalog, "Failed to fetch the emoji catalog", nil).
			WithSuggestion("Check your network connection, the cached catalog is still in use")

	ErrCatalogDecode = NewAppError(TypeCatalog, "Emoji catalog is malformed", nil)

	ErrCatalogEmpty = NewAppError(TypeCatalog, "Emoji catalog is empty", nil)
)

// Prompt errors
var (
	ErrPromptCancelled = NewAppError(TypePrompt, "Prompt cancelled", nil)

	ErrPromptFailed = NewAppError(TypePrompt, "Prompt failed", nil)
)

// Git errors
var (
	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Initialize a git repository: git init")

	ErrStageAll = NewAppError(TypeGit, "Failed to stage changes", nil).
			WithSuggestion("Check the repository status: git status")

	ErrGetStatus = NewAppError(TypeGit, "Failed to read repository status", nil)

	ErrNoChanges = NewAppError(TypeGit, "No staged changes detected", nil).
			WithSuggestion("Stage your changes first with: git add <files>, or enable add-all in: gittr reconfig")

	ErrCreateCommit = NewAppError(TypeGit, "Failed to create commit", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")
)
