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

package httpx

import (
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/rs/zerolog"
)

type traceRoundTripper struct {
	t http.RoundTripper
}

// NewTraceRoundTripper dumps outbound requests and inbound responses if the
// logger of the request context is configured with trace level.
func NewTraceRoundTripper(rt http.RoundTripper) http.RoundTripper {
	return &traceRoundTripper{t: rt}
}

func (t *traceRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := zerolog.Ctx(req.Context())
	if logger.GetLevel() != zerolog.TraceLevel {
		return t.t.RoundTrip(req)
	}

	dump, err := httputil.DumpRequestOut(req, dumpBody(req.ContentLength, req.Header))
	if err != nil {
		logger.Trace().Err(err).Msg("Failed dumping out request")
	} else {
		logger.Trace().Msg("Outbound Request: \n" + string(dump))
	}

	resp, err := t.t.RoundTrip(req)
	if err != nil {
		logger.Trace().Err(err).Msg("Failed sending request")

		return nil, err
	}

	dump, err = httputil.DumpResponse(resp, dumpBody(resp.ContentLength, resp.Header))
	if err != nil {
		logger.Trace().Err(err).Msg("Failed dumping response")
	} else {
		logger.Trace().Msg("Inbound Response: \n" + string(dump))
	}

	return resp, nil
}

// streams and multipart uploads are not dumped
func dumpBody(contentLength int64, header http.Header) bool {
	contentType := header.Get("Content-Type")

	return contentLength != 0 &&
		!strings.Contains(contentType, "stream") &&
		!strings.HasPrefix(contentType, "multipart/")
}
