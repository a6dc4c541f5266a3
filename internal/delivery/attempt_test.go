// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package delivery

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAttempt(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		a := New("r1")
		assert.True(t, a.Delivered())
		assert.False(t, a.ShouldQuarantine())
		assert.False(t, a.ReportError)
	})

	t.Run("transient failure", func(t *testing.T) {
		a := New("r1").WithError(errors.New("502")).ShouldReportError()
		assert.False(t, a.Delivered())
		assert.False(t, a.ShouldQuarantine())
		assert.True(t, a.ReportError)
		assert.Equal(t, "transient", a.Class.String())
	})

	t.Run("permanent failure", func(t *testing.T) {
		a := New("r1").WithError(errors.New("404")).WithClass(Permanent)
		assert.True(t, a.ShouldQuarantine())
		assert.Equal(t, "permanent", a.Class.String())
	})

	t.Run("class without error", func(t *testing.T) {
		a := New("r1").WithClass(Permanent)
		assert.True(t, a.Delivered())
		assert.False(t, a.ShouldQuarantine())
	})
}
