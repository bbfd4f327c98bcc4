package app

import (
	"log/slog"

	"github.com/marcandre259/dictate/config"
	"github.com/marcandre259/dictate/internal/audio"
	"github.com/marcandre259/dictate/internal/delivery"
	"github.com/marcandre259/dictate/internal/domain/dictation/usecases"
	"github.com/marcandre259/dictate/internal/session"
	"github.com/marcandre259/dictate/internal/transcriber"
)

type App struct {
	Start  *usecases.Start
	Stop   *usecases.Stop
	Toggle *usecases.Toggle
}

func New(cfg *config.Config, logger *slog.Logger) *App {
	sessions := session.NewStore(cfg.StateDir)
	recorder := audio.NewRecorder(cfg.Recorder, cfg.SampleRate, cfg.Channels, cfg.BitDepth)

	var engine transcriber.Transcriber
	switch cfg.Engine {
	case config.EngineWhisper:
		engine = transcriber.NewWhisper(cfg.WhisperURL, cfg.WhisperModel, cfg.WhisperLanguage)
	default:
		engine = transcriber.NewCommand(cfg.TranscribeCommand, cfg.TranscribeTimeout)
	}

	pipeline := delivery.NewPipeline(cfg.HistoryPath, cfg.Paste, logger)

	start := &usecases.Start{
		Sessions:      sessions,
		Recorder:      recorder,
		RecordingPath: cfg.RecordingPath,
		Logger:        logger,
	}

	stop := &usecases.Stop{
		Sessions:      sessions,
		Recorder:      recorder,
		Transcriber:   engine,
		Delivery:      pipeline,
		RecordingPath: cfg.RecordingPath,
		StopGrace:     cfg.StopGrace,
		SilenceRMS:    cfg.SilenceRMS,
		Logger:        logger,
	}

	toggle := &usecases.Toggle{
		Sessions: sessions,
		Start:    start,
		Stop:     stop,
	}

	return &App{
		Start:  start,
		Stop:   stop,
		Toggle: toggle,
	}
}
