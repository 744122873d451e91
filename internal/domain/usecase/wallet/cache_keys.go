package wallet

import (
	"github.com/google/uuid"
)

// WalletsCacheKey is the cache key of a user's wallet list
func WalletsCacheKey(userID uuid.UUID) string {
	return "wallets:" + userID.String()
}

// StatsCacheKey is the cache key of a user's transaction statistics
func StatsCacheKey(userID uuid.UUID) string {
	return "stats:" + userID.String()
}

// CacheKeys returns every cached view derived from userID's wallets
func CacheKeys(userIDs ...uuid.UUID) []string {
	keys := make([]string, 0, 2*len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, WalletsCacheKey(id), StatsCacheKey(id))
	}
	return keys
}
