// Package crczerolog adapts a zerolog.Logger to the gen.Logger interface.
package crczerolog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/crclogic/go-crchdl/gen"
)

// DefaultName is the value of the context field added by New.
const DefaultName = "crchdl"

// DefaultNameField is the name of the context field added by New.
const DefaultNameField = "logger"

type logger struct {
	zerologLogger zerolog.Logger
}

// New creates a gen.Logger backed by zerolog, with a global context
// containing a field with name "logger" and value "crchdl", i.e.:
//
//	l.With().Str("logger", "crchdl").Logger()
func New(l zerolog.Logger) gen.Logger {
	return &logger{zerologLogger: l.With().Str(DefaultNameField, DefaultName).Logger()}
}

// NewUnnamed creates a gen.Logger backed by zerolog without modifying its
// context like New does.
func NewUnnamed(l zerolog.Logger) gen.Logger {
	return &logger{zerologLogger: l}
}

func (rec *logger) log(event *zerolog.Event, keysAndValues ...interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		event = event.Any(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1])
	}
	return event
}

func (rec *logger) Debug(msg string, keysAndValues ...interface{}) {
	rec.log(rec.zerologLogger.Debug(), keysAndValues...).Msg(msg)
}

func (rec *logger) Info(msg string, keysAndValues ...interface{}) {
	rec.log(rec.zerologLogger.Info(), keysAndValues...).Msg(msg)
}

func (rec *logger) Error(msg string, keysAndValues ...interface{}) {
	rec.log(rec.zerologLogger.Error(), keysAndValues...).Msg(msg)
}
