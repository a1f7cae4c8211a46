package apperrors

// Error codes shared between the engine and the UI layer.
const (
	ErrCodeUnknown = iota + 1000
	ErrCodeTooFewPlayers
	ErrCodeNoTeams
	ErrCodeEmptyCategory
	ErrCodeNoCategories
	ErrCodeContentUnavailable
	ErrCodeWrongPhase
	ErrCodeSessionEnded
	ErrCodeTimeExpired
	ErrCodeBadPin
)

// GameError is a user-facing, recoverable error. It never indicates a
// process-level fault; the UI renders Message and keeps going.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Predefined errors
var (
	ErrTooFewPlayers      = &GameError{Code: ErrCodeTooFewPlayers, Message: "at least 2 players are required"}
	ErrNoTeams            = &GameError{Code: ErrCodeNoTeams, Message: "at least 1 team is required"}
	ErrEmptyCategory      = &GameError{Code: ErrCodeEmptyCategory, Message: "this category has no cards"}
	ErrNoCategories       = &GameError{Code: ErrCodeNoCategories, Message: "no categories available"}
	ErrContentUnavailable = &GameError{Code: ErrCodeContentUnavailable, Message: "could not load categories"}
	ErrWrongPhase         = &GameError{Code: ErrCodeWrongPhase, Message: "action not allowed in the current phase"}
	ErrSessionEnded       = &GameError{Code: ErrCodeSessionEnded, Message: "the game has already ended"}
	ErrTimeExpired        = &GameError{Code: ErrCodeTimeExpired, Message: "time is up, only pass is allowed"}
	ErrBadPin             = &GameError{Code: ErrCodeBadPin, Message: "wrong PIN"}
)
