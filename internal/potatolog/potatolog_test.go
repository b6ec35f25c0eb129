package potatolog_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/inputlayers/internal/potatolog"
)

func TestMemoryLogReaderWriter(t *testing.T) {

	t.Run("collects zerolog entries", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(0)
		logger := zerolog.New(w)
		logger.Warn().Str("layer", "ui").Msg("first")
		logger.Error().Msg("second")

		entries := w.Get()
		if len(entries) != 2 {
			t.Fatal("expected two entries, got", len(entries))
		}
		if entries[0]["message"] != "first" || entries[0]["layer"] != "ui" {
			t.Error("unexpected first entry", entries[0])
		}
		if len(w.AtLevel(zerolog.WarnLevel)) != 1 || len(w.AtLevel(zerolog.ErrorLevel)) != 1 {
			t.Error("unexpected level filtering")
		}
		if len(w.AtLevel(zerolog.InfoLevel)) != 0 {
			t.Error("unexpected info entries")
		}
	})

	t.Run("bounded", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(2)
		logger := zerolog.New(w)
		logger.Info().Msg("a")
		logger.Info().Msg("b")
		logger.Info().Msg("c")
		entries := w.Get()
		if len(entries) != 2 || entries[0]["message"] != "b" || entries[1]["message"] != "c" {
			t.Error("expected oldest entry dropped, got", entries)
		}
	})

	t.Run("reset", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(0)
		logger := zerolog.New(w)
		logger.Info().Msg("a")
		w.Reset()
		if len(w.Get()) != 0 {
			t.Error("entries survived reset")
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(0)
		if _, err := w.Write([]byte("not json")); err == nil {
			t.Error("expected error for non-JSON input")
		}
	})
}
