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

import "github.com/rs/zerolog"

// gelfSeverity is the numeric "level" field of a GELF message, which uses the
// syslog severity scale.
type gelfSeverity int8

const (
	severityEmergency gelfSeverity = iota
	severityAlert
	severityCritical
	severityError
	severityWarning
	severityNotice
	severityInformational
	severityDebug
)

func gelfSeverityOf(level zerolog.Level) gelfSeverity {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return severityDebug
	case zerolog.InfoLevel:
		return severityInformational
	case zerolog.WarnLevel:
		return severityWarning
	case zerolog.ErrorLevel:
		return severityError
	case zerolog.FatalLevel:
		return severityCritical
	case zerolog.PanicLevel:
		return severityAlert
	default:
		return severityEmergency
	}
}

// gelfSeverityHook adds the numeric level to every leveled event. Events
// written via Log() carry no level and are left untouched.
func gelfSeverityHook() zerolog.Hook {
	return zerolog.HookFunc(func(e *zerolog.Event, level zerolog.Level, _ string) {
		if level != zerolog.NoLevel {
			e.Int8("level", int8(gelfSeverityOf(level)))
		}
	})
}
