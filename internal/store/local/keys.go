package local

const (
	keyFavorites  = "selah:favorites"
	keyHighlights = "selah:highlights"
	keyNotes      = "selah:notes"
	keyProgress   = "selah:reading-progress"
	keySettings   = "selah:reading-settings"
	keyHistory    = "selah:search-history"
	keySession    = "selah:session"

	// keyPrefixMigrated guards the one-time local-to-remote transfer,
	// one permanent marker per user per device.
	keyPrefixMigrated = "selah:migrated:"
)

// migratedKey returns the migration marker key for a user.
func migratedKey(userID string) string {
	return keyPrefixMigrated + userID
}
