// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx/fxevent"
)

// EventLogger writes the lifecycle events of the fx application to zerolog.
// Successful steps are logged on trace level, failures on error level.
type EventLogger struct {
	l zerolog.Logger
}

func NewEventLogger(logger zerolog.Logger) fxevent.Logger {
	return &EventLogger{l: logger}
}

func (e *EventLogger) LogEvent(event fxevent.Event) { //nolint:cyclop,funlen
	switch evt := event.(type) {
	case *fxevent.OnStartExecuting:
		e.l.Trace().
			Str("_functionName", evt.FunctionName).
			Str("_caller", evt.CallerName).
			Msg("OnStart hook executing")
	case *fxevent.OnStartExecuted:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Msg("OnStart hook failed")
		} else {
			e.l.Trace().
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Str("_runtime", evt.Runtime.String()).
				Msg("OnStart hook executed")
		}
	case *fxevent.OnStopExecuting:
		e.l.Trace().
			Str("_functionName", evt.FunctionName).
			Str("_caller", evt.CallerName).
			Msg("OnStop hook executing")
	case *fxevent.OnStopExecuted:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Msg("OnStop hook failed")
		} else {
			e.l.Trace().
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Str("_runtime", evt.Runtime.String()).
				Msg("OnStop hook executed")
		}
	case *fxevent.Supplied:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).
				Str("_type", evt.TypeName).
				Str("_module", evt.ModuleName).
				Msg("Error encountered while supplying module")
		} else {
			e.l.Trace().
				Str("_type", evt.TypeName).
				Str("_module", evt.ModuleName).
				Msg("Module supplied")
		}
	case *fxevent.Provided:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).
				Str("_constructor", evt.ConstructorName).
				Str("_module", evt.ModuleName).
				Msg("Error encountered while providing module")
		} else {
			e.l.Trace().
				Str("_constructor", evt.ConstructorName).
				Strs("_types", evt.OutputTypeNames).
				Str("_module", evt.ModuleName).
				Msg("Module provided")
		}
	case *fxevent.Invoking:
		e.l.Trace().
			Str("_function", evt.FunctionName).
			Str("_module", evt.ModuleName).
			Msg("Invoking module")
	case *fxevent.Invoked:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).
				Str("_function", evt.FunctionName).
				Str("_module", evt.ModuleName).
				Str("_stack", evt.Trace).
				Msg("Invoke failed")
		}
	case *fxevent.Stopping:
		e.l.Trace().Str("_signal", evt.Signal.String()).Msg("Received signal")
	case *fxevent.Stopped:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).Msg("Stop failed")
		} else {
			e.l.Trace().Msg("Stopped")
		}
	case *fxevent.RollingBack:
		e.l.Error().Err(evt.StartErr).Msg("Start failed, rolling back")
	case *fxevent.RolledBack:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).Msg("Rollback failed")
		} else {
			e.l.Trace().Msg("Rollback succeeded")
		}
	case *fxevent.Started:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).Msg("Start failed")
		} else {
			e.l.Trace().Msg("Started")
		}
	case *fxevent.LoggerInitialized:
		if evt.Err != nil {
			e.l.Error().Err(evt.Err).Msg("Custom logger initialization failed")
		}
	}
}
