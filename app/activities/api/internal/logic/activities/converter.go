package activities

import "net/url"

// decodeActivityName resolves the route value into the literal activity
// name. Depending on the client, spaces arrive as "%20" or "+"; QueryUnescape
// handles both, and an already-decoded name passes through unchanged.
func decodeActivityName(raw string) string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
