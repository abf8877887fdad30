package validate

import (
	"fmt"

	"github.com/damian3262-dot/device-repair-hub/internal/types"
)

var deviceTypes = map[types.DeviceType]bool{
	types.DeviceSmartphone: true,
	types.DeviceTablet:     true,
	types.DeviceLaptop:     true,
	types.DevicePC:         true,
	types.DeviceDrone:      true,
	types.DeviceTV:         true,
	types.DeviceSmartwatch: true,
	types.DeviceConsole:    true,
	types.DeviceOther:      true,
}

var orderStatuses = map[types.Status]bool{
	types.StatusReceived:      true,
	types.StatusInRepair:      true,
	types.StatusAwaitingParts: true,
	types.StatusFinished:      true,
	types.StatusDelivered:     true,
	types.StatusBeyondRepair:  true,
}

// FieldError reports which field of the payload failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func ValidDeviceType(t types.DeviceType) bool {
	return deviceTypes[t]
}

func ValidStatus(s types.Status) bool {
	return orderStatuses[s]
}

// ValidateNewOrder rejects payloads before they reach storage: required
// text fields, enum membership and non-negative amounts. An empty
// deviceType or status means "use the default" and passes.
func ValidateNewOrder(order types.NewOrder) error {
	required := []struct {
		field string
		value string
	}{
		{"customerName", order.CustomerName},
		{"clientDni", order.ClientDni},
		{"phone", order.Phone},
		{"deviceModel", order.DeviceModel},
		{"issueDescription", order.IssueDescription},
	}
	for _, r := range required {
		if r.value == "" {
			return &FieldError{Field: r.field, Reason: "cannot be empty"}
		}
	}
	if order.DeviceType != "" && !ValidDeviceType(order.DeviceType) {
		return &FieldError{Field: "deviceType", Reason: "unknown device type"}
	}
	if order.Status != "" && !ValidStatus(order.Status) {
		return &FieldError{Field: "status", Reason: "unknown status"}
	}
	if order.EstimatedCost < 0 {
		return &FieldError{Field: "estimatedCost", Reason: "cannot be negative"}
	}
	if order.Deposit < 0 {
		return &FieldError{Field: "deposit", Reason: "cannot be negative"}
	}
	return nil
}

// ValidateOrderUpdate applies the same rules to the fields that are
// present. An update with no fields at all is a no-op that still
// refreshes updatedAt, so it passes.
func ValidateOrderUpdate(updates types.OrderUpdate) error {
	check := func(field string, value *string) error {
		if value != nil && *value == "" {
			return &FieldError{Field: field, Reason: "cannot be empty"}
		}
		return nil
	}

	for _, c := range []struct {
		field string
		value *string
	}{
		{"customerName", updates.CustomerName},
		{"clientDni", updates.ClientDni},
		{"phone", updates.Phone},
		{"deviceModel", updates.DeviceModel},
		{"issueDescription", updates.IssueDescription},
	} {
		if err := check(c.field, c.value); err != nil {
			return err
		}
	}

	if updates.DeviceType != nil && !ValidDeviceType(*updates.DeviceType) {
		return &FieldError{Field: "deviceType", Reason: "unknown device type"}
	}
	if updates.Status != nil && !ValidStatus(*updates.Status) {
		return &FieldError{Field: "status", Reason: "unknown status"}
	}
	if updates.EstimatedCost != nil && *updates.EstimatedCost < 0 {
		return &FieldError{Field: "estimatedCost", Reason: "cannot be negative"}
	}
	if updates.Deposit != nil && *updates.Deposit < 0 {
		return &FieldError{Field: "deposit", Reason: "cannot be negative"}
	}
	return nil
}
