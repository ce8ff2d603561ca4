package git

import "time"

// UnknownBranch is the current branch name before the first successful refresh.
const UnknownBranch = "Unknown Branch"

// FieldSeparator splits the fields of one commit history line.
const FieldSeparator = "\x1f"

// ChangeKind classifies a changed file.
type ChangeKind int

const (
	ChangeUnknown ChangeKind = iota
	ChangeAdded
	ChangeModified
	ChangeDeleted
	ChangeRenamed
	ChangeCopied
	ChangeUpdatedUnmerged
	ChangeUntracked
	ChangeIgnored
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeDeleted:
		return "deleted"
	case ChangeRenamed:
		return "renamed"
	case ChangeCopied:
		return "copied"
	case ChangeUpdatedUnmerged:
		return "updated-unmerged"
	case ChangeUntracked:
		return "untracked"
	case ChangeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// ChangedFile is one entry of a status query. Path is absolute.
type ChangedFile struct {
	Path string
	Kind ChangeKind
}

// Commit is one record of a commit history query
type Commit struct {
	ShortHash      string
	Hash           string
	Subject        string
	AuthorName     string
	AuthorEmail    string
	CommitterName  string
	CommitterEmail string
	RemoteURL      string
	AuthoredAt     time.Time
	// IsMerge is not filled by the history query.
	IsMerge *bool
}

// ProgressKind tags a clone progress event
type ProgressKind int

const (
	ProgressOther ProgressKind = iota
	ProgressStarted
	ProgressCounting
	ProgressCompressing
	ProgressReceiving
	ProgressResolving
)

func (k ProgressKind) String() string {
	switch k {
	case ProgressStarted:
		return "started"
	case ProgressCounting:
		return "counting-objects"
	case ProgressCompressing:
		return "compressing-objects"
	case ProgressReceiving:
		return "receiving-objects"
	case ProgressResolving:
		return "resolving-deltas"
	default:
		return "other"
	}
}

// ProgressEvent is one classified line of clone output.
// Percent is set for the four percentage kinds, Raw for ProgressOther.
type ProgressEvent struct {
	Kind    ProgressKind
	Percent int
	Raw     string
}

// HasPercent reports whether the event carries a percentage
func (e ProgressEvent) HasPercent() bool {
	switch e.Kind {
	case ProgressCounting, ProgressCompressing, ProgressReceiving, ProgressResolving:
		return true
	default:
		return false
	}
}

// CloneUpdate is one element of a clone stream. An update with Err set
// terminates the stream.
type CloneUpdate struct {
	Event ProgressEvent
	Err   error
}

// HistoryOptions limits a commit history query. Zero values mean no limit.
type HistoryOptions struct {
	MaxEntries int
	Path       string
}
