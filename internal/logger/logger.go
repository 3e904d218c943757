// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New создаёт slog.Logger поверх zerolog. format: text (консоль) или json.
func New(w io.Writer, level string, format string) (logger *slog.Logger, err error) {

	var lvl slog.Level
	if lvl, err = ParseLevel(level); err != nil {
		return nil, err
	}

	var zl zerolog.Logger
	switch strings.ToLower(format) {
	case FormatJSON:
		zl = zerolog.New(w)
	case FormatText, "":
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return slog.New(NewHandler(zl.Level(zerologLevel(lvl)), lvl)), nil
}

func ParseLevel(level string) (lvl slog.Level, err error) {

	if level == "" {
		return slog.LevelInfo, nil
	}
	if err = lvl.UnmarshalText([]byte(level)); err != nil {
		return lvl, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}

type boundAttr struct {
	prefix string
	attr   slog.Attr
}

// Handler slog.Handler, передающий записи в zerolog.
type Handler struct {
	logger zerolog.Logger
	level  slog.Leveler
	attrs  []boundAttr
	prefix string
}

var _ slog.Handler = (*Handler)(nil)

func NewHandler(logger zerolog.Logger, level slog.Leveler) *Handler {

	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{logger: logger, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {

	event := h.logger.WithLevel(zerologLevel(record.Level))
	if event == nil {
		return nil
	}
	if !record.Time.IsZero() {
		event = event.Time(zerolog.TimestampFieldName, record.Time)
	}
	for _, bound := range h.attrs {
		addAttr(event, bound.prefix, bound.attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		addAttr(event, h.prefix, attr)
		return true
	})
	event.Msg(record.Message)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {

	next := *h
	next.attrs = make([]boundAttr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, attr := range attrs {
		next.attrs = append(next.attrs, boundAttr{prefix: h.prefix, attr: attr})
	}
	return &next
}

func (h *Handler) WithGroup(name string) slog.Handler {

	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func addAttr(event *zerolog.Event, prefix string, attr slog.Attr) {

	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := prefix + attr.Key
	value := attr.Value
	switch value.Kind() {
	case slog.KindString:
		event.Str(key, value.String())
	case slog.KindInt64:
		event.Int64(key, value.Int64())
	case slog.KindUint64:
		event.Uint64(key, value.Uint64())
	case slog.KindFloat64:
		event.Float64(key, value.Float64())
	case slog.KindBool:
		event.Bool(key, value.Bool())
	case slog.KindDuration:
		event.Dur(key, value.Duration())
	case slog.KindTime:
		event.Time(key, value.Time())
	case slog.KindGroup:
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = key + "."
		}
		for _, sub := range value.Group() {
			addAttr(event, groupPrefix, sub)
		}
	default:
		if err, ok := value.Any().(error); ok {
			event.AnErr(key, err)
			return
		}
		event.Interface(key, value.Any())
	}
}

func zerologLevel(level slog.Level) zerolog.Level {

	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
