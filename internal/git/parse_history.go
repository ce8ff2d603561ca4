package git

import (
	"strings"
	"time"
)

// historyFormat is the --pretty format matching ParseHistory's field order.
var historyFormat = strings.Join([]string{"%h", "%H", "%s", "%an", "%ae", "%cn", "%ce", "%aI"}, FieldSeparator)

// ParseHistory parses "git log" output produced with historyFormat.
// Missing fields default to "" and a missing or unparsable date falls back to now.
// All records share remoteURL.
func ParseHistory(raw, remoteURL string, now time.Time) []Commit {
	commits := []Commit{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, FieldSeparator)
		field := func(i int) string {
			if i < len(fields) {
				return fields[i]
			}
			return ""
		}

		authoredAt, err := time.Parse(time.RFC3339, strings.TrimSpace(field(7)))
		if err != nil {
			authoredAt = now
		}

		commits = append(commits, Commit{
			ShortHash:      field(0),
			Hash:           field(1),
			Subject:        field(2),
			AuthorName:     field(3),
			AuthorEmail:    field(4),
			CommitterName:  field(5),
			CommitterEmail: field(6),
			RemoteURL:      remoteURL,
			AuthoredAt:     authoredAt,
		})
	}
	return commits
}
