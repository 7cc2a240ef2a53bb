package tui

import (
	"context"
	"testing"

	grustnogram "github.com/grustnolabs/go-grustnogram"
	"github.com/grustnolabs/go-grustnogram/internal/mock"
	"github.com/grustnolabs/go-grustnogram/internal/validators"
	"github.com/grustnolabs/go-grustnogram/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── registerFlow bridge ──────────────────────────────────────────────────────

func TestRegisterFlow_CodeRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPI(ctrl)
	api.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, reg models.Registration, code grustnogram.CodeFunc) (string, error) {
			digits, err := code(ctx)
			require.NoError(t, err)
			require.Equal(t, "1234", digits)
			return "token-1", nil
		},
	)

	m := NewRegisterModel(context.Background(), api, validators.New())
	cmd := m.cmdStartRegister(models.Registration{
		Nickname: "sadjoe",
		Email:    "joe@example.com",
		Phone:    "+79990000000",
		Password: "секрет",
	})

	// Команда блокируется, пока API не попросит код.
	msg := cmd()
	req, ok := msg.(codeRequestedMsg)
	require.True(t, ok, "первым должен прийти запрос кода")

	// То же самое делает страница кода после enter.
	req.flow.code <- "1234"
	result := <-req.flow.done
	require.NoError(t, result.Err)
	assert.Equal(t, "token-1", result.Session.AccessToken)
	assert.Equal(t, "sadjoe", result.Session.Nickname)
	assert.Equal(t, "joe@example.com", result.Session.Email)
}

func TestRegisterFlow_FailsBeforeCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPI(ctrl)
	api.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return("", grustnogram.ErrEmailExists)

	m := NewRegisterModel(context.Background(), api, validators.New())
	cmd := m.cmdStartRegister(models.Registration{
		Nickname: "sadjoe",
		Email:    "taken@example.com",
		Phone:    "+79990000000",
		Password: "секрет",
	})

	msg := cmd()
	result, ok := msg.(LoginResult)
	require.True(t, ok, "код не запрашивается, если регистрация упала раньше")
	assert.ErrorIs(t, result.Err, grustnogram.ErrEmailExists)
}

// ── page wiring ──────────────────────────────────────────────────────────────

func TestRegisterModel_NavigatesToCodePage(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil, validators.New())
	m.submitting = true

	flow := &registerFlow{}
	updated, cmd := m.Update(codeRequestedMsg{flow: flow})
	require.NotNil(t, cmd)
	assert.False(t, updated.(*RegisterModel).submitting)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "code", nav.Page)

	payload, ok := nav.Payload.(codeRequestedMsg)
	require.True(t, ok)
	assert.Same(t, flow, payload.flow)
}

func TestRegisterModel_ShowsTakenIdentityError(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil, validators.New())
	m.submitting = true

	updated, _ := m.Update(LoginResult{Err: grustnogram.ErrLoginExists})

	got := updated.(*RegisterModel)
	assert.False(t, got.submitting)
	assert.Equal(t, "Никнейм уже занят", got.errMsg)
}
