package camera

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"starshot-analyzer/internal/domain/entity"
	"starshot-analyzer/internal/domain/port"
)

const (
	defaultReadRetries  = 5
	defaultRetryBackoff = 500 * time.Millisecond
)

// StreamSource владеет одним живым видеопотоком и даёт потокобезопасный
// неблокирующий доступ к последнему кадру и к самому яркому кадру текущей
// сессии записи. Цикл чтения работает в отдельной горутине.
//
// Слот последнего кадра и слот сессии защищены независимыми блокировками:
// медленный потребитель LatestFrame не задерживает учёт яркости, и наоборот.
// Обе блокировки никогда не удерживаются одновременно.
type StreamSource struct {
	opener port.CaptureOpener
	logger *slog.Logger

	// ReadRetries — допустимое число последовательных неудачных чтений
	// перед разрывом соединения.
	ReadRetries int
	// RetryBackoff — пауза перед повторным чтением после неудачи.
	RetryBackoff time.Duration

	mu             sync.Mutex // соединение, состояние и списки колбэков
	state          entity.StreamState
	capture        port.VideoCapture
	stop           chan struct{}
	done           chan struct{}
	frameCallbacks []func(entity.Frame)
	errCallbacks   []func(error)

	frameMu sync.Mutex // только слот последнего кадра
	current *entity.Frame

	sessionMu     sync.Mutex // только состояние сессии записи
	sessionActive bool
	bestFrame     *entity.Frame
	bestScore     int64
}

// NewStreamSource создаёт источник кадров поверх функции открытия потока.
func NewStreamSource(opener port.CaptureOpener, logger *slog.Logger) *StreamSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreamSource{
		opener:       opener,
		logger:       logger,
		state:        entity.StreamDisconnected,
		ReadRetries:  defaultReadRetries,
		RetryBackoff: defaultRetryBackoff,
	}
}

// Connect открывает поток и запускает цикл чтения. Если соединение уже есть,
// оно сначала разрывается. Подключение считается успешным только после
// декодирования первого кадра.
func (s *StreamSource) Connect(ctx context.Context, endpoint string) error {
	s.Disconnect()
	if err := ctx.Err(); err != nil {
		return err
	}

	s.setState(entity.StreamConnecting)

	capture, err := s.opener(endpoint)
	if err != nil {
		s.setState(entity.StreamDisconnected)
		return fmt.Errorf("open stream %q: %w", endpoint, err)
	}

	first, err := capture.Read()
	if err != nil {
		_ = capture.Close()
		s.setState(entity.StreamDisconnected)
		return fmt.Errorf("read first frame from %q: %w", endpoint, err)
	}

	stop := make(chan struct{})
	done := make(chan struct{})

	s.mu.Lock()
	s.capture = capture
	s.stop = stop
	s.done = done
	s.state = entity.StreamStreaming
	s.mu.Unlock()

	s.handleFrame(first)
	go s.loop(capture, stop, done)

	s.logger.Info("stream connected", "endpoint", endpoint)
	return nil
}

// Disconnect останавливает цикл чтения и освобождает поток. Возврат из
// Disconnect гарантирует, что цикл завершился: ни один колбэк больше не
// вызовется и общие слоты не изменятся. Повторный вызов безопасен.
func (s *StreamSource) Disconnect() {
	s.mu.Lock()
	stop, done, capture := s.stop, s.done, s.capture
	s.stop, s.done, s.capture = nil, nil, nil
	s.state = entity.StreamDisconnected
	s.mu.Unlock()

	if stop != nil {
		close(stop)
		if capture != nil {
			// Закрытие потока до ожидания выводит цикл из блокирующего Read.
			_ = capture.Close()
		}
		<-done // синхронизация с завершением цикла, не просто сигнал
	} else if capture != nil {
		_ = capture.Close()
	}
}

// State возвращает текущее состояние потока.
func (s *StreamSource) State() entity.StreamState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LatestFrame возвращает копию последнего декодированного кадра или nil.
// Блокировка держится только на время копирования указателя.
func (s *StreamSource) LatestFrame() *entity.Frame {
	s.frameMu.Lock()
	current := s.current
	s.frameMu.Unlock()

	if current == nil {
		return nil
	}
	c := current.Clone()
	return &c
}

// StartSession включает отбор самого яркого кадра, сбрасывая прежний итог.
func (s *StreamSource) StartSession() {
	s.sessionMu.Lock()
	s.sessionActive = true
	s.bestFrame = nil
	s.bestScore = 0
	s.sessionMu.Unlock()
}

// StopSession выключает отбор и возвращает самый яркий кадр, полученный
// строго между StartSession и StopSession, или nil, если кадров не было.
func (s *StreamSource) StopSession() *entity.Frame {
	s.sessionMu.Lock()
	best := s.bestFrame
	s.sessionActive = false
	s.bestFrame = nil
	s.bestScore = 0
	s.sessionMu.Unlock()

	if best == nil {
		return nil
	}
	c := best.Clone()
	return &c
}

// OnFrame регистрирует колбэк на каждый декодированный кадр.
func (s *StreamSource) OnFrame(fn func(entity.Frame)) {
	s.mu.Lock()
	s.frameCallbacks = append(s.frameCallbacks, fn)
	s.mu.Unlock()
}

// OnError регистрирует колбэк на фатальную ошибку чтения потока.
func (s *StreamSource) OnError(fn func(error)) {
	s.mu.Lock()
	s.errCallbacks = append(s.errCallbacks, fn)
	s.mu.Unlock()
}

// loop — цикл чтения. Единичные сбои декодирования пропускаются с паузой,
// серия из ReadRetries подряд разрывает соединение и сообщает об этом один
// раз через колбэки ошибок.
func (s *StreamSource) loop(capture port.VideoCapture, stop <-chan struct{}, done chan struct{}) {
	defer close(done)

	failures := 0
	for {
		select {
		case <-stop:
			return
		default:
		}

		frame, err := capture.Read()
		if err != nil {
			failures++
			if failures >= s.ReadRetries {
				s.logger.Error("stream read failed, disconnecting", "error", err, "failures", failures)
				s.setState(entity.StreamDisconnected)
				s.emitError(fmt.Errorf("stream read: %w", err))
				_ = capture.Close()
				return
			}
			s.logger.Warn("frame read failed, retrying", "attempt", failures, "error", err)
			select {
			case <-stop:
				return
			case <-time.After(s.RetryBackoff):
			}
			continue
		}
		failures = 0

		// Кадр, дочитанный одновременно с Disconnect, отбрасывается:
		// после возврата из Disconnect слоты не меняются.
		select {
		case <-stop:
			return
		default:
		}

		s.handleFrame(frame)
	}
}

// handleFrame раскладывает кадр по слотам и зовёт колбэки вне блокировок.
func (s *StreamSource) handleFrame(frame entity.Frame) {
	current := frame.Clone()
	s.frameMu.Lock()
	s.current = &current
	s.frameMu.Unlock()

	score := frame.Brightness() // счёт яркости — вне блокировок

	s.sessionMu.Lock()
	if s.sessionActive && (s.bestFrame == nil || score > s.bestScore) {
		best := frame.Clone()
		s.bestFrame = &best
		s.bestScore = score
	}
	s.sessionMu.Unlock()

	s.mu.Lock()
	callbacks := make([]func(entity.Frame), len(s.frameCallbacks))
	copy(callbacks, s.frameCallbacks)
	s.mu.Unlock()

	for _, fn := range callbacks {
		s.invoke(fn, frame.Clone())
	}
}

// invoke изолирует панику колбэка от цикла чтения.
func (s *StreamSource) invoke(fn func(entity.Frame), frame entity.Frame) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("frame callback panicked", "panic", r)
		}
	}()
	fn(frame)
}

func (s *StreamSource) emitError(err error) {
	s.mu.Lock()
	callbacks := make([]func(error), len(s.errCallbacks))
	copy(callbacks, s.errCallbacks)
	s.mu.Unlock()

	for _, fn := range callbacks {
		s.invokeErr(fn, err)
	}
}

// invokeErr изолирует панику колбэка ошибки от цикла чтения.
func (s *StreamSource) invokeErr(fn func(error), err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("error callback panicked", "panic", r)
		}
	}()
	fn(err)
}

func (s *StreamSource) setState(state entity.StreamState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

var _ port.FrameSource = (*StreamSource)(nil)
