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

package fleetapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/elnormous/contenttype"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/ybbus/httpretry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dadrus/fleetcache/internal/config"
	"github.com/dadrus/fleetcache/internal/fleetcache"
	"github.com/dadrus/fleetcache/internal/x/errorchain"
	"github.com/dadrus/fleetcache/internal/x/httpx"
)

// Requester is the set of operations offered by the fleet API. Successful
// responses with a JSON content type are returned decoded, all others as string.
type Requester interface {
	Get(ctx context.Context, endpoint string, params url.Values) (any, error)
	Post(ctx context.Context, endpoint string, body any) (any, error)
	Put(ctx context.Context, endpoint string, body any) (any, error)
	Delete(ctx context.Context, endpoint string) (any, error)
	Upload(ctx context.Context, endpoint, fileName string, file io.Reader, fields map[string]string) (any, error)
}

type Client struct {
	baseURL *url.URL
	headers map[string]string
	client  *http.Client
}

func NewClient(conf config.APIConfig) (*Client, error) {
	baseURL, err := url.Parse(conf.BaseURL)
	if err != nil {
		return nil, errorchain.NewWithMessage(fleetcache.ErrConfiguration,
			"failed to parse base url of the fleet api").CausedBy(err)
	}

	client := &http.Client{
		Timeout: conf.Timeout,
		Transport: otelhttp.NewTransport(
			httpx.NewTraceRoundTripper(http.DefaultTransport),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return fmt.Sprintf("%s %s @%s", r.Method, r.URL.Path, baseURL.Host)
			})),
	}

	if conf.Retry != nil {
		client = httpretry.NewCustomClient(
			client,
			httpretry.WithBackoffPolicy(
				httpretry.ExponentialBackoff(conf.Retry.MaxDelay, conf.Retry.GiveUpAfter, 0)))
	}

	return &Client{baseURL: baseURL, headers: conf.Headers, client: client}, nil
}

func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (any, error) {
	return c.request(ctx, http.MethodGet, c.endpointURL(endpoint, params), nil, "")
}

func (c *Client) Post(ctx context.Context, endpoint string, body any) (any, error) {
	return c.requestWithJSON(ctx, http.MethodPost, endpoint, body)
}

func (c *Client) Put(ctx context.Context, endpoint string, body any) (any, error) {
	return c.requestWithJSON(ctx, http.MethodPut, endpoint, body)
}

func (c *Client) Delete(ctx context.Context, endpoint string) (any, error) {
	return c.request(ctx, http.MethodDelete, c.endpointURL(endpoint, nil), nil, "")
}

// Upload posts the file as the "file" part of a multipart form together with
// the given additional fields.
func (c *Client) Upload(
	ctx context.Context,
	endpoint, fileName string,
	file io.Reader,
	fields map[string]string,
) (any, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err == nil {
		_, err = io.Copy(part, file)
	}

	for key, value := range fields {
		if err != nil {
			break
		}

		err = writer.WriteField(key, value)
	}

	if err == nil {
		err = writer.Close()
	}

	if err != nil {
		return nil, errorchain.NewWithMessage(fleetcache.ErrInternal,
			"failed to create multipart body").CausedBy(err)
	}

	return c.request(ctx, http.MethodPost, c.endpointURL(endpoint, nil), buf, writer.FormDataContentType())
}

func (c *Client) requestWithJSON(ctx context.Context, method, endpoint string, body any) (any, error) {
	if body == nil {
		body = map[string]any{}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errorchain.NewWithMessage(fleetcache.ErrArgument,
			"failed to marshal request body").CausedBy(err)
	}

	return c.request(ctx, method, c.endpointURL(endpoint, nil), bytes.NewReader(raw), "application/json")
}

func (c *Client) endpointURL(endpoint string, params url.Values) string {
	endpointURL := c.baseURL.JoinPath(endpoint)
	if len(params) != 0 {
		endpointURL.RawQuery = params.Encode()
	}

	return endpointURL.String()
}

func (c *Client) request(
	ctx context.Context,
	method, endpointURL string,
	body io.Reader,
	contentType string,
) (any, error) {
	logger := zerolog.Ctx(ctx)

	logger.Debug().Str("_method", method).Str("_endpoint", endpointURL).Msg("Sending request")

	req, err := http.NewRequestWithContext(ctx, method, endpointURL, body)
	if err != nil {
		return nil, errorchain.NewWithMessage(fleetcache.ErrInternal,
			"failed to create a request instance").CausedBy(err)
	}

	for name, value := range c.headers {
		req.Header.Set(name, value)
	}

	if len(contentType) != 0 {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn().Err(err).Str("_endpoint", endpointURL).Msg("Request failed")

		var clientErr *url.Error
		if errors.As(err, &clientErr) && clientErr.Timeout() {
			return nil, errorchain.New(fleetcache.ErrCommunicationTimeout).CausedBy(err)
		}

		return nil, errorchain.New(fleetcache.ErrCommunication).CausedBy(err)
	}

	defer resp.Body.Close()

	return readResponse(resp)
}

func readResponse(resp *http.Response) (any, error) {
	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorchain.NewWithMessage(fleetcache.ErrCommunication,
			"failed to read response").CausedBy(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var detail string
		if gjson.ValidBytes(rawData) {
			detail = gjson.GetBytes(rawData, "detail").String()
		}

		return nil, fleetcache.NewAPIError(resp.StatusCode, detail)
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		return string(rawData), nil
	}

	if len(rawData) == 0 {
		return nil, nil //nolint:nilnil
	}

	var result any
	if err = json.Unmarshal(rawData, &result); err != nil {
		return nil, errorchain.NewWithMessage(fleetcache.ErrInternal,
			"failed to decode response").CausedBy(err)
	}

	return result, nil
}

func isJSON(contentType string) bool {
	if len(contentType) == 0 {
		return false
	}

	mediaType := contenttype.NewMediaType(contentType)

	return mediaType.Type == "application" &&
		(mediaType.Subtype == "json" || strings.HasSuffix(mediaType.Subtype, "+json"))
}
