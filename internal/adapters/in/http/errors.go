package http

import (
	"errors"
	"fmt"
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/actor"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/core/domain/services"
	"tracking/internal/pkg/errs"
)

// errBadRequest marks input that could not be bound to a request type.
var errBadRequest = errors.New("invalid request")

var (
	errInvalidBody         = fmt.Errorf("%w: body is not valid JSON for this route", errBadRequest)
	errInvalidStatusFilter = fmt.Errorf("%w: status filter must be an integer", errBadRequest)
)

type errorMapping struct {
	target error
	status int
	reason string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{errBadRequest, http.StatusBadRequest, "bad_request"},
	{errs.ErrObjectNotFound, http.StatusNotFound, "not_found"},
	{actor.ErrForbidden, http.StatusForbidden, "forbidden"},
	{order.ErrDuplicateOrder, http.StatusBadRequest, "duplicate_order"},
	{commands.ErrAssigneeAmbiguous, http.StatusBadRequest, "assignee_ambiguous"},
	{commands.ErrDriverRequired, http.StatusBadRequest, "driver_required"},
	{party.ErrInvalidClientType, http.StatusBadRequest, "invalid_client_type"},
	{party.ErrInvalidUserType, http.StatusBadRequest, "invalid_user_type"},
	{order.ErrUnsupportedTransition, http.StatusBadRequest, "unsupported_transition"},
	{services.ErrUnconfiguredFlow, http.StatusBadRequest, "unconfigured_flow"},
	{services.ErrNoEligibleOrder, http.StatusBadRequest, "no_eligible_order"},
	{errs.ErrValueIsRequired, http.StatusUnprocessableEntity, "validation"},
	{errs.ErrValueIsInvalid, http.StatusUnprocessableEntity, "validation"},
	{errs.ErrValueIsOutOfRange, http.StatusUnprocessableEntity, "validation"},
}

// classify maps a use case error onto an HTTP status and a metrics reason.
func classify(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.reason
		}
	}
	return http.StatusInternalServerError, "internal"
}
