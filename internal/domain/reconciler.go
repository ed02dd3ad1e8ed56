package domain

import (
	"context"
	"log/slog"
	"strings"

	"gooze.dev/pkg/goozereport/internal/adapter"
	m "gooze.dev/pkg/goozereport/internal/model"
)

// Comment layout defaults.
const (
	DefaultCommentHeader = "### "
	DefaultCommentMarker = "[Gooze Mutation Coverage]"
	CommentTableHeader   = "|   |path|line coverage|mutation coverage|test strength|\n|----|----|----|----|----|"
	EmptyReportText      = "report is empty"
)

// ReconcileArgs describes the comment to publish.
type ReconcileArgs struct {
	Thread m.Thread
	Body   string
	Header string
	Marker string
}

// Reconciler replaces the previously published report comment with a new one.
type Reconciler interface {
	Reconcile(ctx context.Context, args ReconcileArgs) (m.ReconcileResult, error)
}

type reconciler struct {
	adapter.ReviewClient
}

// NewReconciler creates a Reconciler posting through client.
func NewReconciler(client adapter.ReviewClient) Reconciler {
	return &reconciler{ReviewClient: client}
}

// ComposeComment builds the full comment text. The marker identifies comments
// published by this tool.
func ComposeComment(header, marker, body string) string {
	var sb strings.Builder

	sb.WriteString(header)
	sb.WriteString(marker)
	sb.WriteString("\n\n")

	if body == "" {
		sb.WriteString(EmptyReportText)
	} else {
		sb.WriteString(CommentTableHeader)
		sb.WriteString("\n")
		sb.WriteString(body)
	}

	return sb.String()
}

// Reconcile deletes the newest comment authored by the current identity that
// carries the marker, then creates the new comment. A failed delete is logged
// and recorded, never retried.
func (r *reconciler) Reconcile(ctx context.Context, args ReconcileArgs) (m.ReconcileResult, error) {
	var result m.ReconcileResult

	if args.Header == "" {
		args.Header = DefaultCommentHeader
	}

	if args.Marker == "" {
		args.Marker = DefaultCommentMarker
	}

	self, err := r.Self(ctx)
	if err != nil {
		slog.Error("Failed to resolve review identity", "error", err, "status", adapter.StatusText(err))
		return result, &m.RemoteAPIError{Op: m.OpIdentity, Err: err}
	}

	comments, err := r.ListComments(ctx, args.Thread)
	if err != nil {
		slog.Error("Failed to list review comments", "repo", args.Thread.Repo, "number", args.Thread.Number,
			"error", err, "status", adapter.StatusText(err))

		return result, &m.RemoteAPIError{Op: m.OpList, Err: err}
	}

	if previous := findPrevious(comments, self, args.Marker); previous != nil {
		result.Deleted = previous

		if err := r.DeleteComment(ctx, args.Thread, previous.ID); err != nil {
			slog.Warn("Failed to delete previous report comment", "id", previous.ID, "error", err,
				"status", adapter.StatusText(err))

			result.DeleteError = &m.RemoteAPIError{Op: m.OpDelete, Err: err}
		} else {
			slog.Info("Deleted previous report comment", "id", previous.ID)
		}
	}

	created, err := r.CreateComment(ctx, args.Thread, ComposeComment(args.Header, args.Marker, args.Body))
	if err != nil {
		slog.Error("Failed to create report comment", "repo", args.Thread.Repo, "number", args.Thread.Number,
			"error", err, "status", adapter.StatusText(err))

		return result, &m.RemoteAPIError{Op: m.OpCreate, Err: err}
	}

	result.Created = created

	slog.Info("Published report comment", "repo", args.Thread.Repo, "number", args.Thread.Number, "id", created.ID)

	return result, nil
}

// findPrevious returns the most recent comment written by self that contains
// marker, or nil.
func findPrevious(comments []m.RemoteComment, self m.Identity, marker string) *m.RemoteComment {
	var found *m.RemoteComment

	for i := range comments {
		c := comments[i]
		if !sameIdentity(c.Author, self) || !strings.Contains(c.Body, marker) {
			continue
		}

		if found == nil || c.CreatedAt.After(found.CreatedAt) ||
			(c.CreatedAt.Equal(found.CreatedAt) && c.ID > found.ID) {
			found = &c
		}
	}

	return found
}

func sameIdentity(a, b m.Identity) bool {
	if a.ID != 0 && b.ID != 0 {
		return a.ID == b.ID
	}

	return a.Login != "" && a.Login == b.Login
}
