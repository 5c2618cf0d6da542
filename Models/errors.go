package Models

import "errors"

// Ledger errors. Controllers translate these into result payloads; the
// messages are what the UI shows the user.
var (
	ErrDuplicatePatient     = errors.New("another patient already has the same national ID or member number")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrAlreadyRecordedToday = errors.New("a session has already been recorded for this patient today")
	ErrNoAvailableQuota     = errors.New("no active orders with available sessions")
)
