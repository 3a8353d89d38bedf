package browser

import (
	"context"
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"userdeck/internal/randomuser"
)

// profilesFetchedMsg carries a successful batch back to Update.
type profilesFetchedMsg struct {
	seq      int
	count    int
	profiles []randomuser.Profile
}

// profilesFetchFailedMsg reports a fetch that produced nothing.
type profilesFetchFailedMsg struct {
	seq   int
	count int
	err   error
}

// launchFailedMsg reports a mailto:/tel: URI the OS refused to open.
type launchFailedMsg struct {
	uri string
	err error
}

// fetchProfiles snapshots the requested count and returns a command that
// asks the fetcher for that many profiles. Each call runs independently;
// overlapping fetches all land, in the order their responses arrive.
func (m Model) fetchProfiles() tea.Cmd {
	*m.fetchSeq++
	seq := *m.fetchSeq
	count := m.deck.RequestedCount()
	fetcher := m.fetcher
	ctx := m.ctx

	m.fetchLog.Debug("fetch issued", zap.Int("seq", seq), zap.Int("count", count))

	return func() tea.Msg {
		if fetcher == nil {
			return profilesFetchFailedMsg{seq: seq, count: count, err: errors.New("no profile source configured")}
		}
		profiles, err := fetcher.FetchProfiles(ctx, count)
		if err != nil {
			return profilesFetchFailedMsg{seq: seq, count: count, err: err}
		}
		return profilesFetchedMsg{seq: seq, count: count, profiles: profiles}
	}
}

func (m *Model) handleFetched(msg profilesFetchedMsg) {
	m.deck.Append(msg.profiles)
	m.input.SetValue(strconv.Itoa(m.deck.RequestedCount()))
	m.input.CursorEnd()
	m.refreshList()

	m.fetchLog.Info("profiles appended",
		zap.Int("seq", msg.seq),
		zap.Int("count", msg.count),
		zap.Int("received", len(msg.profiles)),
		zap.Int("total", m.deck.Len()),
	)
}

// handleFetchFailed logs the failure. The deck and the count field are left
// exactly as they were.
func (m *Model) handleFetchFailed(msg profilesFetchFailedMsg) {
	fields := []zap.Field{
		zap.Int("seq", msg.seq),
		zap.Int("count", msg.count),
		zap.Error(msg.err),
	}
	var fe *randomuser.FetchError
	if errors.As(msg.err, &fe) {
		fields = append(fields,
			zap.String("request_id", fe.RequestID),
			zap.Stringer("kind", fe.Kind),
		)
		if fe.StatusCode != 0 {
			fields = append(fields, zap.Int("status", fe.StatusCode))
		}
	}

	if errors.Is(msg.err, context.Canceled) {
		m.fetchLog.Debug("fetch abandoned", fields...)
		return
	}
	m.fetchLog.Error("fetch failed", fields...)
}

// openURI hands uri to the opener off the event loop.
func (m Model) openURI(uri string) tea.Cmd {
	opener := m.opener
	return func() tea.Msg {
		if err := opener.Open(uri); err != nil {
			return launchFailedMsg{uri: uri, err: err}
		}
		return nil
	}
}
