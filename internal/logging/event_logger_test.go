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
	"bytes"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxevent"
)

func TestEventLogger(t *testing.T) {
	t.Parallel()

	testErr := errors.New("test error")

	for uc, tc := range map[string]struct {
		evt    fxevent.Event
		expMsg string
	}{
		"OnStartExecuting": {
			evt:    &fxevent.OnStartExecuting{FunctionName: "newRegistry", CallerName: "module"},
			expMsg: `{"level":"trace", "_functionName":"newRegistry", "_caller":"module", "message":"OnStart hook executing"}`,
		},
		"OnStartExecuted with error": {
			evt:    &fxevent.OnStartExecuted{FunctionName: "newRegistry", CallerName: "module", Err: testErr},
			expMsg: `{"level":"error", "_functionName":"newRegistry", "_caller":"module", "error":"test error", "message":"OnStart hook failed"}`,
		},
		"OnStopExecuted without error": {
			evt: &fxevent.OnStopExecuted{
				FunctionName: "newRegistry", CallerName: "module", Runtime: time.Second,
			},
			expMsg: `{"level":"trace", "_functionName":"newRegistry", "_caller":"module", "_runtime":"1s", "message":"OnStop hook executed"}`,
		},
		"Supplied without error": {
			evt:    &fxevent.Supplied{TypeName: "*config.Configuration", ModuleName: "fleetcache"},
			expMsg: `{"level":"trace", "_type":"*config.Configuration", "_module":"fleetcache", "message":"Module supplied"}`,
		},
		"Provided without error": {
			evt: &fxevent.Provided{
				ConstructorName: "NewClient", OutputTypeNames: []string{"*fleetapi.Client"}, ModuleName: "fleetapi",
			},
			expMsg: `{"level":"trace", "_constructor":"NewClient", "_types":["*fleetapi.Client"], "_module":"fleetapi", "message":"Module provided"}`,
		},
		"Provided with error": {
			evt:    &fxevent.Provided{ConstructorName: "NewClient", ModuleName: "fleetapi", Err: testErr},
			expMsg: `{"level":"error", "_constructor":"NewClient", "_module":"fleetapi", "error":"test error", "message":"Error encountered while providing module"}`,
		},
		"Invoked with error": {
			evt:    &fxevent.Invoked{FunctionName: "init", ModuleName: "logging", Trace: "trace", Err: testErr},
			expMsg: `{"level":"error", "_function":"init", "_module":"logging", "_stack":"trace", "error":"test error", "message":"Invoke failed"}`,
		},
		"Stopping": {
			evt:    &fxevent.Stopping{Signal: syscall.SIGINT},
			expMsg: `{"level":"trace", "_signal":"interrupt", "message":"Received signal"}`,
		},
		"Stopped without error": {
			evt:    &fxevent.Stopped{},
			expMsg: `{"level":"trace", "message":"Stopped"}`,
		},
		"RollingBack": {
			evt:    &fxevent.RollingBack{StartErr: testErr},
			expMsg: `{"level":"error", "error":"test error", "message":"Start failed, rolling back"}`,
		},
		"Started with error": {
			evt:    &fxevent.Started{Err: testErr},
			expMsg: `{"level":"error", "error":"test error", "message":"Start failed"}`,
		},
		"LoggerInitialized with error": {
			evt:    &fxevent.LoggerInitialized{Err: testErr},
			expMsg: `{"level":"error", "error":"test error", "message":"Custom logger initialization failed"}`,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			buf := &bytes.Buffer{}
			logger := NewEventLogger(zerolog.New(buf))

			// WHEN
			logger.LogEvent(tc.evt)

			// THEN
			assert.JSONEq(t, tc.expMsg, buf.String())
		})
	}
}
