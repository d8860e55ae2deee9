package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Status
		wantErr bool
	}{
		{name: "exact", token: "seen", want: StatusSeen},
		{name: "uppercase", token: "APPROVED", want: StatusApproved},
		{name: "padded", token: "  resolved ", want: StatusResolved},
		{name: "submitted is valid", token: "submitted", want: StatusSubmitted},
		{name: "unknown", token: "rejected", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidationRejected))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusTitle(t *testing.T) {
	assert.Equal(t, "Send", StatusSend.Title())
	assert.Equal(t, "Approved", StatusApproved.Title())
	assert.Equal(t, "", Status("").Title())
}

func TestDraftComplete(t *testing.T) {
	d := &Draft{UserID: 1}
	assert.False(t, d.Complete())

	d.Batch = "batch a"
	d.Subject = "Quant"
	assert.False(t, d.Complete())

	d.LectureName = "Percentages 101"
	assert.True(t, d.Complete())

	var nilDraft *Draft
	assert.False(t, nilDraft.Complete())
}
