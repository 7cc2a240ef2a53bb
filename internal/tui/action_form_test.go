package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grustnolabs/go-grustnogram/internal/mock"
	"github.com/grustnolabs/go-grustnogram/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestActionForm_DispatchesAPICalls(t *testing.T) {
	tests := []struct {
		name       string
		action     actionKind
		text       string
		expect     func(api *mock.MockAPI)
		wantNotice string
	}{
		{
			name:   "like post",
			action: actionLikePost,
			expect: func(api *mock.MockAPI) {
				api.EXPECT().LikePost(gomock.Any(), int64(42)).Return(nil)
			},
			wantNotice: "Пост 42 лайкнут",
		},
		{
			name:   "dislike post",
			action: actionDislikePost,
			expect: func(api *mock.MockAPI) {
				api.EXPECT().DislikePost(gomock.Any(), int64(42)).Return(nil)
			},
			wantNotice: "Лайк с поста 42 снят",
		},
		{
			name:   "comment post",
			action: actionCommentPost,
			text:   "всё тлен",
			expect: func(api *mock.MockAPI) {
				api.EXPECT().CommentPost(gomock.Any(), int64(42), "всё тлен").
					Return(models.Comment{ID: 7, Comment: "всё тлен"}, nil)
			},
			wantNotice: "Комментарий 7 опубликован",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := mock.NewMockAPI(ctrl)
			tt.expect(api)

			m := NewActionFormModel(context.Background(), api)
			m.configure(tt.action)
			m.inputs[0].SetValue("42")
			if tt.text != "" {
				m.inputs[1].SetValue(tt.text)
			}

			_, cmd := m.submit()
			require.NotNil(t, cmd)
			assert.True(t, m.submitting)

			result, ok := cmd().(ActionResult)
			require.True(t, ok)
			require.NoError(t, result.Err)
			assert.Equal(t, tt.wantNotice, result.Notice)
		})
	}
}

func TestActionForm_BrowseNavigatesToComments(t *testing.T) {
	m := NewActionFormModel(context.Background(), nil)
	m.configure(actionBrowseComments)
	m.inputs[0].SetValue("7")

	_, cmd := m.submit()
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "comments", nav.Page)
	assert.Equal(t, BrowseRequest{PostID: 7}, nav.Payload)
}

func TestActionForm_DeleteAsksConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPI(ctrl)
	api.EXPECT().DeletePost(gomock.Any(), int64(9)).Return(nil)

	m := NewActionFormModel(context.Background(), api)
	m.configure(actionDeletePost)
	m.inputs[0].SetValue("9")

	// enter не удаляет сразу, а показывает y/n.
	_, cmd := m.submit()
	assert.Nil(t, cmd)
	assert.True(t, m.confirming)
	assert.Equal(t, int64(9), m.pendingID)

	updated, cmd := m.Update(keyRune('y'))
	require.NotNil(t, cmd)
	assert.False(t, updated.(*ActionFormModel).confirming)

	result, ok := cmd().(ActionResult)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Equal(t, "Пост 9 удалён", result.Notice)
}

func TestActionForm_DeclinedConfirmationDoesNothing(t *testing.T) {
	m := NewActionFormModel(context.Background(), nil)
	m.configure(actionDeletePost)
	m.inputs[0].SetValue("9")

	_, _ = m.submit()
	require.True(t, m.confirming)

	updated, cmd := m.Update(keyRune('n'))
	assert.Nil(t, cmd)

	got := updated.(*ActionFormModel)
	assert.False(t, got.confirming)
	assert.Zero(t, got.pendingID)
}

func TestActionForm_RejectsBadID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "not a number", id: "abc"},
		{name: "zero", id: "0"},
		{name: "negative", id: "-3"},
		{name: "empty", id: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewActionFormModel(context.Background(), nil)
			m.configure(actionLikePost)
			m.inputs[0].SetValue(tt.id)

			_, cmd := m.submit()
			assert.Nil(t, cmd)
			assert.False(t, m.submitting)
			assert.Equal(t, "ID поста должен быть положительным числом", m.errMsg)
		})
	}
}
