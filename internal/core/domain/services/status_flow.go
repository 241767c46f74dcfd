package services

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"tracking/internal/core/domain/model/order"
)

// ErrUnconfiguredFlow is returned for an owner slug without a flow.
var ErrUnconfiguredFlow = errors.New("status flow is not configured")

// StatusFlow maps a current status to the next one. It implements order.Flow.
type StatusFlow map[order.Status]order.Status

func (f StatusFlow) Next(current order.Status) (order.Status, error) {
	next, ok := f[current]
	if !ok {
		return 0, order.UnsupportedTransitionError(current)
	}
	return next, nil
}

// SlugFlowTable selects a StatusFlow by owner slug.
type SlugFlowTable map[string]StatusFlow

// DefaultSlugFlowTable returns the four built-in flows:
//
//	"1": 0->1, 1->2, 2->3, 3->4, 4->5
//	"2": 0->1, 2->5
//	"3": 1->1, 4->5
//	"4": 4->5
func DefaultSlugFlowTable() SlugFlowTable {
	return SlugFlowTable{
		"1": {
			order.Intake:           order.Triaged,
			order.Triaged:          order.ProviderAssigned,
			order.ProviderAssigned: order.SelfAssigned,
			order.SelfAssigned:     order.DriverAssigned,
			order.DriverAssigned:   order.Delivered,
		},
		"2": {
			order.Intake:           order.Triaged,
			order.ProviderAssigned: order.Delivered,
		},
		"3": {
			order.Triaged:        order.Triaged,
			order.DriverAssigned: order.Delivered,
		},
		"4": {
			order.DriverAssigned: order.Delivered,
		},
	}
}

// ForSlug returns a copy of the flow configured for slug.
func (t SlugFlowTable) ForSlug(slug string) (order.Flow, error) {
	slug = strings.TrimSpace(slug)
	flow, ok := t[slug]
	if !ok {
		return nil, fmt.Errorf("%w: slug %q", ErrUnconfiguredFlow, slug)
	}
	return maps.Clone(flow), nil
}
