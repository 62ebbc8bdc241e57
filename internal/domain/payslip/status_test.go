package payslip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPreview, StatusPreview, true},
		{StatusPreview, StatusGenerated, true},
		{StatusPreview, StatusSettled, false},
		{StatusGenerated, StatusSettled, true},
		{StatusGenerated, StatusGenerated, false},
		{StatusGenerated, StatusPreview, false},
		{StatusSettled, StatusPreview, false},
		{StatusSettled, StatusGenerated, false},
		{StatusSettled, StatusSettled, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatusValid(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusPreview.Valid())
	assert.True(t, StatusGenerated.Valid())
	assert.True(t, StatusSettled.Valid())
	assert.False(t, Status("draft").Valid())
}
