package handlers

import (
	"errors"
	"net/http"

	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/domain/wizard"
	"interior_estimator/internal/usecase"
	"interior_estimator/pkg"
)

var (
	errInvalidPayload     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errCatalogUnavailable = pkg.NewDomainErrorSimple("CATALOG_UNAVAILABLE", "Pricing is temporarily unavailable, please reload", http.StatusServiceUnavailable)
	errInternal           = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
	errStepIncomplete     = pkg.NewDomainErrorSimple("STEP_INCOMPLETE", "Step incomplete", http.StatusUnprocessableEntity)
	errWrongStep          = pkg.NewDomainErrorSimple("WRONG_STEP", "Action not allowed in the current step", http.StatusConflict)
	errNoTransition       = pkg.NewDomainErrorSimple("NO_TRANSITION", "No step to move to", http.StatusConflict)
	errSessionNotFound    = pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	errEstimateNotReady   = pkg.NewDomainErrorSimple("ESTIMATE_NOT_READY", "Estimate is not ready yet", http.StatusConflict)
	errSessionConflict    = pkg.NewDomainErrorSimple("SESSION_CONFLICT", "The session was changed by another request, reload and retry", http.StatusConflict)
	errRoomNotInLayout    = pkg.NewDomainErrorSimple("ROOM_NOT_IN_LAYOUT", "Room is not part of the selected layout", http.StatusUnprocessableEntity)
	errUnknownPriceTable  = pkg.NewDomainErrorSimple("UNKNOWN_PRICE_TABLE", "Unknown price table", http.StatusNotFound)
)

func mapWizardError(err error) *pkg.AppError {
	var stepErr *wizard.StepError
	switch {
	case errors.As(err, &stepErr):
		return errStepIncomplete.WithDetails(stepErr.Message)
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, wizard.ErrInvalidProjectType),
		errors.Is(err, wizard.ErrUnknownPackage),
		errors.Is(err, entities.ErrInvalidRoomKey):
		return errInvalidPayload.WithDetails(err.Error())
	case errors.Is(err, usecase.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, wizard.ErrWrongStep):
		return errWrongStep.WithDetails(err.Error())
	case errors.Is(err, wizard.ErrNoPreviousStep), errors.Is(err, wizard.ErrFinalStep):
		return errNoTransition.WithDetails(err.Error())
	case errors.Is(err, wizard.ErrRoomNotInLayout):
		return errRoomNotInLayout
	case errors.Is(err, usecase.ErrEstimateNotReady):
		return errEstimateNotReady
	case errors.Is(err, wizard.ErrStaleSession):
		return errSessionConflict
	default:
		return mapCatalogError(err)
	}
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return errCatalogUnavailable
	case errors.Is(err, usecase.ErrUnknownPriceTable):
		return errUnknownPriceTable
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}
