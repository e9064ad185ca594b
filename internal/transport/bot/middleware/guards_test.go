package middleware

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testOwnerID     = int64(1000)
	testAdminChatID = int64(-200)
)

func TestAdminChatAllowed(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
		chatID int64
		want   bool
	}{
		{
			name:   "owner from a private dialog",
			userID: testOwnerID,
			chatID: testOwnerID,
			want:   true,
		},
		{
			name:   "owner from the admin chat",
			userID: testOwnerID,
			chatID: testAdminChatID,
			want:   true,
		},
		{
			name:   "regular user inside the admin chat",
			userID: 42,
			chatID: testAdminChatID,
			want:   true,
		},
		{
			// A private dialog's chat ID equals the user ID, so it can never
			// pass as the admin chat.
			name:   "regular user from a private dialog",
			userID: 42,
			chatID: 42,
			want:   false,
		},
		{
			name:   "regular user from a foreign group",
			userID: 42,
			chatID: -300,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			rq.Equal(tt.want, adminChatAllowed(tt.userID, tt.chatID, testAdminChatID, testOwnerID))
		})
	}
}
