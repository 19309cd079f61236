package port

import (
	"context"

	"starshot-analyzer/internal/domain/entity"
)

// FrameSource интерфейс потокобезопасного источника кадров
type FrameSource interface {
	// Connect открывает поток по адресу. Повторное подключение сначала
	// разрывает текущее соединение.
	Connect(ctx context.Context, endpoint string) error

	// Disconnect останавливает цикл чтения и освобождает поток; после
	// возврата ни один колбэк не вызывается. Повторный вызов безопасен.
	Disconnect()

	// State возвращает текущее состояние потока.
	State() entity.StreamState

	// LatestFrame возвращает копию последнего декодированного кадра
	// или nil, если кадров ещё не было. Не блокируется на вводе-выводе.
	LatestFrame() *entity.Frame

	// StartSession включает отбор самого яркого кадра, сбрасывая прежний итог.
	StartSession()

	// StopSession выключает отбор и возвращает самый яркий кадр сессии
	// или nil, если кадры не поступали.
	StopSession() *entity.Frame

	// OnFrame регистрирует колбэк на каждый декодированный кадр.
	// Ошибки и паники колбэка не останавливают цикл чтения.
	OnFrame(fn func(entity.Frame))

	// OnError регистрирует колбэк на фатальную ошибку чтения потока.
	OnError(fn func(error))
}
