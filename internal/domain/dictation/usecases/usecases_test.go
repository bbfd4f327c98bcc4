package usecases

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcandre259/dictate/internal/domain/dictation"
	"github.com/marcandre259/dictate/internal/session"
)

const deadPID = 1 << 30

type fakeRecorder struct {
	checkErr error
	startPID int
	startErr error
	started  []string
	signaled []int
}

func (f *fakeRecorder) Check() error { return f.checkErr }

func (f *fakeRecorder) StartBackground(outputPath string) (int, error) {
	if f.startErr != nil {
		return 0, f.startErr
	}
	f.started = append(f.started, outputPath)
	return f.startPID, nil
}

func (f *fakeRecorder) SignalStop(pid int) error {
	f.signaled = append(f.signaled, pid)
	return nil
}

type fakeTranscriber struct {
	text  string
	err   error
	calls int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, wavPath string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeDelivery struct {
	delivered []string
	err       error
}

func (f *fakeDelivery) Deliver(text string) error {
	f.delivered = append(f.delivered, text)
	return f.err
}

type fixture struct {
	sessions      *session.Store
	recorder      *fakeRecorder
	transcriber   *fakeTranscriber
	delivery      *fakeDelivery
	recordingPath string
	start         *Start
	stop          *Stop
	toggle        *Toggle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &fixture{
		sessions:      session.NewStore(dir),
		recorder:      &fakeRecorder{startPID: os.Getpid()},
		transcriber:   &fakeTranscriber{},
		delivery:      &fakeDelivery{},
		recordingPath: filepath.Join(dir, "recording.wav"),
	}

	f.start = &Start{
		Sessions:      f.sessions,
		Recorder:      f.recorder,
		RecordingPath: f.recordingPath,
		Logger:        logger,
	}
	f.stop = &Stop{
		Sessions:      f.sessions,
		Recorder:      f.recorder,
		Transcriber:   f.transcriber,
		Delivery:      f.delivery,
		RecordingPath: f.recordingPath,
		StopGrace:     300 * time.Millisecond,
		SilenceRMS:    200,
		Logger:        logger,
	}
	f.toggle = &Toggle{Sessions: f.sessions, Start: f.start, Stop: f.stop}
	return f
}

// writeArtifact produces a valid WAV at the fixture's recording path.
func (f *fixture) writeArtifact(t *testing.T, samples []int) {
	t.Helper()

	file, err := os.Create(f.recordingPath)
	require.NoError(t, err)
	enc := wav.NewEncoder(file, 16000, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 16000},
		Data:           samples,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, file.Close())
}

func speech(n int) []int {
	samples := make([]int, n)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 8000
		} else {
			samples[i] = -8000
		}
	}
	return samples
}

func (f *fixture) liveSession(t *testing.T) *session.Session {
	t.Helper()
	sess := &session.Session{PID: os.Getpid(), StartedAt: time.Now().Add(-2 * time.Second)}
	require.NoError(t, f.sessions.Save(sess))
	return sess
}

// --- start ---

func TestStartSpawnsAndRecordsSession(t *testing.T) {
	f := newFixture(t)
	f.recorder.startPID = 4242

	require.NoError(t, f.start.Execute())

	assert.Equal(t, []string{f.recordingPath}, f.recorder.started)

	sess, err := f.sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, 4242, sess.PID)
}

func TestStartWhileRecordingTerminatesPriorCapture(t *testing.T) {
	f := newFixture(t)
	prior := f.liveSession(t)

	// Residual audio from the prior session must not leak forward.
	require.NoError(t, os.WriteFile(f.recordingPath, []byte("old audio"), 0o644))

	f.recorder.startPID = 4242
	require.NoError(t, f.start.Execute())

	assert.Equal(t, []int{prior.PID}, f.recorder.signaled)
	assert.NoFileExists(t, f.recordingPath)

	sess, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, 4242, sess.PID)
}

func TestStartWithStaleSessionSkipsTermination(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sessions.Save(&session.Session{PID: deadPID, StartedAt: time.Now()}))

	require.NoError(t, f.start.Execute())

	assert.Empty(t, f.recorder.signaled)
	sess, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), sess.PID)
}

func TestStartSpawnFailure(t *testing.T) {
	f := newFixture(t)
	f.recorder.startErr = errors.New("rec: cannot open device")

	require.Error(t, f.start.Execute())

	sess, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStartMissingRecorderBinary(t *testing.T) {
	f := newFixture(t)
	f.recorder.checkErr = errors.New("rec not found")

	require.Error(t, f.start.Execute())
	assert.Empty(t, f.recorder.started)
}

// --- stop ---

func TestStopWhileIdleFailsWithNoSideEffects(t *testing.T) {
	f := newFixture(t)

	_, err := f.stop.Execute(context.Background())
	assert.ErrorIs(t, err, dictation.ErrNotRecording)

	assert.Zero(t, f.transcriber.calls)
	assert.Empty(t, f.delivery.delivered)
}

func TestStopHappyPath(t *testing.T) {
	f := newFixture(t)
	sess := f.liveSession(t)
	f.writeArtifact(t, speech(1600))
	f.transcriber.text = "hello world"

	result, err := f.stop.Execute(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "hello world", result.Transcript)
	assert.GreaterOrEqual(t, result.Duration, 2*time.Second)

	assert.Equal(t, []int{sess.PID}, f.recorder.signaled)
	assert.Equal(t, []string{"hello world"}, f.delivery.delivered)
	assert.NoFileExists(t, f.recordingPath)

	loaded, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStopEmptyTranscriptIsSuccess(t *testing.T) {
	f := newFixture(t)
	f.liveSession(t)
	f.writeArtifact(t, speech(1600))
	f.transcriber.text = ""

	result, err := f.stop.Execute(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Transcript)
	assert.Empty(t, f.delivery.delivered)
	assert.NoFileExists(t, f.recordingPath)
}

func TestStopSilentRecordingSkipsEngine(t *testing.T) {
	f := newFixture(t)
	f.liveSession(t)
	f.writeArtifact(t, make([]int, 1600))

	result, err := f.stop.Execute(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Transcript)
	assert.Zero(t, f.transcriber.calls)
	assert.Empty(t, f.delivery.delivered)
	assert.NoFileExists(t, f.recordingPath)
}

func TestStopTranscriptionFailureBlocksDelivery(t *testing.T) {
	f := newFixture(t)
	f.liveSession(t)
	f.writeArtifact(t, speech(1600))
	f.transcriber.err = errors.New("engine crashed")

	_, err := f.stop.Execute(context.Background())
	assert.ErrorIs(t, err, dictation.ErrTranscriptionFailed)

	assert.Empty(t, f.delivery.delivered)

	// The handle was consumed first: the system is idle and a fresh
	// start works without manual cleanup.
	sess, loadErr := f.sessions.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, sess)
}

func TestStopArtifactMissing(t *testing.T) {
	f := newFixture(t)
	f.liveSession(t)

	_, err := f.stop.Execute(context.Background())
	assert.ErrorIs(t, err, dictation.ErrArtifactMissing)

	assert.Zero(t, f.transcriber.calls)

	sess, loadErr := f.sessions.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, sess)
}

func TestStopDeliveryErrorStillReturnsResult(t *testing.T) {
	f := newFixture(t)
	f.liveSession(t)
	f.writeArtifact(t, speech(1600))
	f.transcriber.text = "hello world"
	f.delivery.err = dictation.ErrClipboardWrite

	result, err := f.stop.Execute(context.Background())
	assert.ErrorIs(t, err, dictation.ErrClipboardWrite)
	require.NotNil(t, result)
	assert.Equal(t, "hello world", result.Transcript)
}

// --- toggle ---

func TestToggleTwiceRunsStartThenStop(t *testing.T) {
	f := newFixture(t)
	f.transcriber.text = "hello world"

	state, result, err := f.toggle.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dictation.StateIdle, state)
	assert.Nil(t, result)
	require.Len(t, f.recorder.started, 1)

	// The capture "runs" between the two toggles and leaves an artifact.
	f.writeArtifact(t, speech(1600))

	state, result, err = f.toggle.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dictation.StateRecording, state)
	require.NotNil(t, result)
	assert.Equal(t, "hello world", result.Transcript)

	assert.Len(t, f.recorder.started, 1)
	assert.Equal(t, []string{"hello world"}, f.delivery.delivered)
}

func TestToggleTreatsDeadPIDAsIdle(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sessions.Save(&session.Session{PID: deadPID, StartedAt: time.Now()}))

	state, _, err := f.toggle.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dictation.StateIdle, state)
	require.Len(t, f.recorder.started, 1)
	assert.Zero(t, f.transcriber.calls)
}
