package telegram

// allowList gates bot access by Telegram user ID.
type allowList struct {
	allowed map[int64]bool // empty = allow all
}

// newAllowList creates an allow list.
// If allowedUserIDs is empty, all users are allowed.
func newAllowList(allowedUserIDs []int64) *allowList {
	allowed := make(map[int64]bool, len(allowedUserIDs))
	for _, id := range allowedUserIDs {
		allowed[id] = true
	}
	return &allowList{allowed: allowed}
}

// isAllowed checks if a user is authorized to use the bot.
func (a *allowList) isAllowed(userID int64) bool {
	if len(a.allowed) == 0 {
		return true
	}
	return a.allowed[userID]
}
