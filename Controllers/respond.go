package Controllers

import (
	"errors"
	"net/http"

	"TherapyTrack/Models"
)

// statusFor maps ledger errors onto HTTP statuses. Anything the ledger
// did not classify is a storage fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, Models.ErrDuplicatePatient),
		errors.Is(err, Models.ErrAlreadyRecordedToday),
		errors.Is(err, Models.ErrNoAvailableQuota):
		return http.StatusConflict
	case errors.Is(err, Models.ErrPatientNotFound),
		errors.Is(err, Models.ErrOrderNotFound),
		errors.Is(err, Models.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
