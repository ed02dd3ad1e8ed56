package model

import "time"

// Identity is an account of the remote review system.
type Identity struct {
	ID    int64
	Login string
}

// Thread addresses the discussion a comment belongs to (pull request or issue).
type Thread struct {
	Repo   string
	Number int
}

// RemoteComment is a comment owned by the remote review system.
type RemoteComment struct {
	ID        int64
	Author    Identity
	Body      string
	CreatedAt time.Time
}

// MergeResult describes the outcome of combining the per-module fragments.
type MergeResult struct {
	Body    string
	Modules []string // module paths included, in output order
	Missing []string // expected modules without a fragment
	Skipped []string // fragments that could not be read
}

// Empty reports whether no fragment contributed to the body.
func (r MergeResult) Empty() bool {
	return r.Body == ""
}

// ReconcileResult describes what the comment reconciler did remotely.
type ReconcileResult struct {
	Deleted     *RemoteComment
	DeleteError error
	Created     RemoteComment
}
