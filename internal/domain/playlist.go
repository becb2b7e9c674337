package domain

import "strings"

// The platform encodes a channel's auto-generated upload playlists by
// replacing the channel-ID prefix: "UULF" + suffix lists long-form uploads,
// "UUSH" + suffix lists shorts. This is an unversioned convention, not a
// documented API contract, so derivation is total and shape-checked here
// instead of spending an extra API call per channel.
const (
	channelIDLength      = 24
	channelIDPrefix      = "UC"
	videosPlaylistPrefix = "UULF"
	shortsPlaylistPrefix = "UUSH"
)

// DerivePlaylistIDs computes the long-form and short-form upload playlist
// IDs for a channel ID. ok is false when the ID is not exactly 24 characters
// starting with "UC"; callers skip such records rather than fail.
func DerivePlaylistIDs(channelID string) (videosID, shortsID string, ok bool) {
	if len(channelID) != channelIDLength || !strings.HasPrefix(channelID, channelIDPrefix) {
		return "", "", false
	}
	suffix := channelID[len(channelIDPrefix):]
	return videosPlaylistPrefix + suffix, shortsPlaylistPrefix + suffix, true
}
