package notify

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhin/complaintbot/internal/domain"
)

func testComplaint() *domain.Complaint {
	username := "student"
	return &domain.Complaint{
		ID:          7,
		UserID:      100,
		Username:    &username,
		Batch:       "master quest 2026",
		Subject:     "Quant",
		LectureName: "Percentages 101",
		PhotoFileID: "photo-file-id",
		Status:      domain.StatusSubmitted,
	}
}

func TestReviewSummary(t *testing.T) {
	text := ReviewSummary(testComplaint())

	assert.Contains(t, text, "`100`")
	assert.Contains(t, text, "@student")
	assert.Contains(t, text, "master quest 2026")
	assert.Contains(t, text, "Quant")
	assert.Contains(t, text, "Percentages 101")
	assert.Contains(t, text, "Submitted")
	assert.Contains(t, text, "`7`")
}

func TestReviewSummaryWithoutUsername(t *testing.T) {
	cmp := testComplaint()
	cmp.Username = nil

	text := ReviewSummary(cmp)
	assert.Contains(t, text, "No username")
}

func TestStatusKeyboardLayout(t *testing.T) {
	markup := StatusKeyboard(7)
	require.NotNil(t, markup)

	// Four statuses, two per row.
	require.Len(t, markup.InlineKeyboard, 2)
	var labels []string
	for _, row := range markup.InlineKeyboard {
		require.Len(t, row, 2)
		for _, btn := range row {
			labels = append(labels, btn.Text)
			assert.Equal(t, CallbackStatus, btn.Unique)
			assert.True(t, strings.HasPrefix(btn.Data, "7|"))
		}
	}
	assert.Equal(t, []string{"Send", "Seen", "Approved", "Resolved"}, labels)
}

func TestStatusKeyboardPayload(t *testing.T) {
	markup := StatusKeyboard(42)
	btn := markup.InlineKeyboard[0][0]

	want := fmt.Sprintf("%d|%s", 42, domain.StatusSend)
	assert.Equal(t, want, btn.Data)
}
