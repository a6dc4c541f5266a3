// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package delivery

// Class says what the engine does with a failed delivery.
type Class int

const (
	// Transient failures leave the reminder pending for the next cycle.
	Transient Class = iota
	// Permanent failures can never succeed; the reminder is quarantined.
	Permanent
)

func (c Class) String() string {
	switch c {
	case Permanent:
		return "permanent"
	default:
		return "transient"
	}
}

// Attempt tracks the outcome of delivering one reminder.
type Attempt struct {
	ReminderID  string
	Error       error
	Class       Class
	ReportError bool
}

// New starts tracking a delivery attempt for a reminder.
func New(reminderID string) *Attempt {
	return &Attempt{ReminderID: reminderID}
}

// WithError records the failure of an Attempt.
func (a *Attempt) WithError(err error) *Attempt {
	a.Error = err
	return a
}

// WithClass updates the failure class of an Attempt.
func (a *Attempt) WithClass(class Class) *Attempt {
	a.Class = class
	return a
}

// ShouldReportError marks the attempt's error to be alerted on.
func (a *Attempt) ShouldReportError() *Attempt {
	a.ReportError = true
	return a
}

// Delivered reports whether the comment was posted.
func (a *Attempt) Delivered() bool {
	return a.Error == nil
}

// ShouldQuarantine reports whether the reminder must be retired without
// delivery.
func (a *Attempt) ShouldQuarantine() bool {
	return a.Error != nil && a.Class == Permanent
}
