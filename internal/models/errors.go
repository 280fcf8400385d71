package models

import "errors"

// Доменные ошибки. Сервисный слой оборачивает их через %w, транспортный слой
// (gateway и HTTP-хэндлеры) разворачивает errors.Is и превращает в события
// или коды ответа.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrGuardianNotFound = errors.New("guardian not found")

	// ErrGuardianAlreadyExists возвращается при добавлении опекуна с уже
	// занятым email или телефоном
	ErrGuardianAlreadyExists = errors.New("guardian already exists")
	ErrSafeZoneNotFound      = errors.New("safe zone not found")
	ErrIncidentNotFound      = errors.New("incident not found")

	// ErrActiveIncidentExists возвращается при попытке создать второй активный
	// инцидент для того же пользователя
	ErrActiveIncidentExists = errors.New("active incident already exists")

	// ErrIncidentAlreadyClosed возвращается при попытке разрешить инцидент,
	// уже находящийся в терминальном статусе
	ErrIncidentAlreadyClosed = errors.New("incident already closed")

	// ErrUnauthorized означает, что вызывающий не владелец и не опекун владельца
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается при невалидном bearer-токене на подключении
	ErrInvalidToken = errors.New("invalid token")
)
