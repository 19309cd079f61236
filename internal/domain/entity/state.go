package entity

// StreamState состояние видеопотока
type StreamState string

const (
	StreamDisconnected StreamState = "disconnected" // Соединения нет
	StreamConnecting   StreamState = "connecting"   // Поток открывается
	StreamStreaming    StreamState = "streaming"    // Кадры поступают
)
