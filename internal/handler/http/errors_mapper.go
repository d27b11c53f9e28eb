package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrValidationEmptyName:           http.StatusBadRequest,
	service.ErrValidationEmptySKU:            http.StatusBadRequest,
	service.ErrValidationEmptyUnit:           http.StatusBadRequest,
	service.ErrValidationInvalidRole:         http.StatusBadRequest,
	service.ErrValidationInvalidPrice:        http.StatusBadRequest,
	service.ErrValidationInvalidQuantity:     http.StatusBadRequest,
	service.ErrValidationInvalidThreshold:    http.StatusBadRequest,
	service.ErrValidationNoProductID:         http.StatusBadRequest,
	service.ErrValidationInvalidMovementType: http.StatusBadRequest,
	service.ErrValidationNoRecordingUser:     http.StatusUnauthorized,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,

	store.ErrCategoryNotFound:  http.StatusNotFound,
	store.ErrSupplierNotFound:  http.StatusNotFound,
	store.ErrProductNotFound:   http.StatusNotFound,
	store.ErrDuplicateName:     http.StatusConflict,
	store.ErrReferenceNotFound: http.StatusBadRequest,
	store.ErrEntityInUse:       http.StatusConflict,
	store.ErrInsufficientStock: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
