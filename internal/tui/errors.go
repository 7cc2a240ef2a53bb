// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package tui

import (
	"errors"
	"strings"

	grustnogram "github.com/grustnolabs/go-grustnogram"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// apiErrorMessage turns the documented API errors into user-facing text.
// Anything else goes through the network humanizer untouched.
func apiErrorMessage(err error) string {
	switch {
	case errors.Is(err, grustnogram.ErrBadCredentials):
		return "Неверный логин или пароль"
	case errors.Is(err, grustnogram.ErrUserNotFound):
		return "Пользователь не найден"
	case errors.Is(err, grustnogram.ErrEmailExists):
		return "Email уже зарегистрирован"
	case errors.Is(err, grustnogram.ErrLoginExists):
		return "Никнейм уже занят"
	}
	return humanizeServerUnavailableError(err)
}
