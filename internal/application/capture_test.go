package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"starshot-analyzer/internal/domain/entity"
	"starshot-analyzer/internal/domain/port"
)

// fakeSource — управляемый источник кадров для тестов сервиса.
type fakeSource struct {
	state     entity.StreamState
	latest    *entity.Frame
	best      *entity.Frame
	started   bool
	connected string
}

func (f *fakeSource) Connect(ctx context.Context, endpoint string) error {
	f.connected = endpoint
	f.state = entity.StreamStreaming
	return nil
}
func (f *fakeSource) Disconnect()                   { f.state = entity.StreamDisconnected }
func (f *fakeSource) State() entity.StreamState     { return f.state }
func (f *fakeSource) LatestFrame() *entity.Frame    { return f.latest }
func (f *fakeSource) StartSession()                 { f.started = true }
func (f *fakeSource) StopSession() *entity.Frame    { return f.best }
func (f *fakeSource) OnFrame(fn func(entity.Frame)) {}
func (f *fakeSource) OnError(fn func(error))        {}

var _ port.FrameSource = (*fakeSource)(nil)

func TestCaptureService_SnapshotWithoutFrames(t *testing.T) {
	svc := NewCaptureService(&fakeSource{}, entity.ROI{}, nil)

	_, err := svc.Snapshot()
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestCaptureService_SnapshotAppliesCrop(t *testing.T) {
	frame := entity.NewGrayFrame(8, 8)
	frame.Set(5, 5, 0, 99)
	src := &fakeSource{latest: &frame}

	svc := NewCaptureService(src, entity.ROI{X0: 4, Y0: 4, X1: 8, Y1: 8}, nil)

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	require.Equal(t, 4, snap.Width)
	require.Equal(t, uint8(99), snap.At(1, 1, 0))
}

func TestCaptureService_FinishRecordingWithoutFrames(t *testing.T) {
	svc := NewCaptureService(&fakeSource{}, entity.ROI{}, nil)

	svc.BeginRecording()
	_, err := svc.FinishRecording()
	require.ErrorIs(t, err, ErrNoFrames)
}

func TestCaptureService_FinishRecordingReturnsBest(t *testing.T) {
	best := entity.NewGrayFrame(4, 4)
	best.Set(0, 0, 0, 250)
	src := &fakeSource{best: &best}

	svc := NewCaptureService(src, entity.ROI{}, nil)
	svc.BeginRecording()
	require.True(t, src.started)

	got, err := svc.FinishRecording()
	require.NoError(t, err)
	require.Equal(t, best.Pix, got.Pix)
}

func TestCaptureService_ConnectDelegates(t *testing.T) {
	src := &fakeSource{}
	svc := NewCaptureService(src, entity.ROI{}, nil)

	require.NoError(t, svc.Connect(context.Background(), "rtsp://cam"))
	require.Equal(t, "rtsp://cam", src.connected)
	require.Equal(t, entity.StreamStreaming, svc.State())

	svc.Disconnect()
	require.Equal(t, entity.StreamDisconnected, svc.State())
}
