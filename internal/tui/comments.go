package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	grustnogram "github.com/grustnolabs/go-grustnogram"
	"github.com/grustnolabs/go-grustnogram/models"
)

const commentsPageSize = 10

// CommentsModel is the paged comments browser. It loads one page at a
// time and lets the user like, dislike, copy and delete the selected
// comment without leaving the page.
type CommentsModel struct {
	ctx context.Context
	api grustnogram.API

	postID   int64
	comments []models.Comment
	idx      int
	offset   int
	loading  bool
	spinner  spinner.Model
	status   string
	errMsg   string

	confirming bool
	pendingID  int64
}

func NewCommentsModel(ctx context.Context, api grustnogram.API) *CommentsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &CommentsModel{ctx: ctx, api: api, spinner: s}
}

func (m *CommentsModel) Init() tea.Cmd {
	return nil
}

func (m *CommentsModel) current() (models.Comment, bool) {
	if len(m.comments) == 0 || m.idx < 0 || m.idx >= len(m.comments) {
		return models.Comment{}, false
	}
	return m.comments[m.idx], true
}

func (m *CommentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BrowseRequest:
		m.postID = msg.PostID
		m.comments = nil
		m.idx = 0
		m.offset = 0
		m.errMsg = ""
		m.status = ""
		m.confirming = false
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(0))
	case commentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = apiErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if len(msg.comments) == 0 && msg.offset > 0 {
			// Ran past the last page: keep the one on screen.
			m.status = "Дальше комментариев нет"
			return m, cmdClearStatus()
		}
		m.comments = msg.comments
		m.offset = msg.offset
		if m.idx >= len(m.comments) {
			m.idx = len(m.comments) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case commentMutatedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = apiErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.notice
		if msg.reload {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLoad(m.offset), cmdClearStatus())
		}
		return m, cmdClearStatus()
	case copiedMsg:
		m.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirming = false
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdDeleteComment(m.pendingID))
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirming = false
			m.pendingID = 0
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.comments)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.nextPage):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(m.offset+commentsPageSize))
	case key.Matches(keyMsg, keys.prevPage):
		if m.loading || m.offset == 0 {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(m.offset-commentsPageSize))
	case key.Matches(keyMsg, keys.copy):
		comment, ok := m.current()
		if !ok || comment.Comment == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(comment.Comment)
	case key.Matches(keyMsg, keys.like):
		comment, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdLikeComment(comment.ID)
	case key.Matches(keyMsg, keys.dislike):
		comment, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDislikeComment(comment.ID)
	case key.Matches(keyMsg, keys.del):
		comment, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirming = true
		m.pendingID = comment.ID
	}

	return m, nil
}

func (m *CommentsModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...\n")
	} else if len(m.comments) == 0 {
		b.WriteString("Комментариев нет\n")
	} else {
		for i, c := range m.comments {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			created := time.Unix(c.CreatedAt, 0).Format("02.01.2006 15:04")
			b.WriteString(fmt.Sprintf("%s#%d │ %s │ %s: %s\n", cursor, c.ID, created, c.Nickname, fitText(c.Comment, 42)))
		}
	}

	b.WriteString(fmt.Sprintf("\nстраница %d\n", m.offset/commentsPageSize+1))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(renderError(m.errMsg))

	if m.confirming {
		b.WriteString("\n")
		b.WriteString(renderConfirmOverlay(fmt.Sprintf("Удалить комментарий %d?", m.pendingID)))
		b.WriteString("\n")
	}

	title := fmt.Sprintf("КОММЕНТАРИИ К ПОСТУ %d", m.postID)
	hotKeys := "↑/↓: выбор │ n/p: страница │ l: лайк │ d: снять лайк │ c: копировать │ x: удалить │ esc: назад"
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *CommentsModel) cmdLoad(offset int) tea.Cmd {
	ctx := m.ctx
	api := m.api
	postID := m.postID
	return func() tea.Msg {
		comments, err := api.GetComments(ctx, postID, commentsPageSize, offset)
		return commentsLoadedMsg{comments: comments, offset: offset, err: err}
	}
}

func (m *CommentsModel) cmdLikeComment(commentID int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.LikeComment(ctx, commentID)
		return commentMutatedMsg{err: err, notice: fmt.Sprintf("Комментарий %d лайкнут", commentID)}
	}
}

func (m *CommentsModel) cmdDislikeComment(commentID int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.DislikeComment(ctx, commentID)
		return commentMutatedMsg{err: err, notice: fmt.Sprintf("Лайк с комментария %d снят", commentID)}
	}
}

func (m *CommentsModel) cmdDeleteComment(commentID int64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.DeleteComment(ctx, commentID)
		return commentMutatedMsg{err: err, notice: fmt.Sprintf("Комментарий %d удалён", commentID), reload: true}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return commentMutatedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
