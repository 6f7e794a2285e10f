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
	"context"
	"io"
	"net/url"
	"strconv"
)

const DefaultTopLimit = 10

// API offers the endpoints of the fleet backend on top of any Requester.
// Fleet data is returned as decoded by the Requester and not interpreted here.
type API struct {
	r Requester
}

func NewAPI(r Requester) *API { return &API{r: r} }

func (a *API) Vehicles(ctx context.Context, filters url.Values) (any, error) {
	return a.r.Get(ctx, "/api/veiculos", compact(filters))
}

func (a *API) Vehicle(ctx context.Context, id string) (any, error) {
	return a.r.Get(ctx, "/api/veiculos/"+url.PathEscape(id), nil)
}

func (a *API) OccupancyScore(ctx context.Context, vehicleID string) (any, error) {
	return a.r.Get(ctx, "/api/veiculos/"+url.PathEscape(vehicleID)+"/nota", nil)
}

func (a *API) Battalions(ctx context.Context, municipality string) (any, error) {
	return a.r.Get(ctx, "/api/geo/batalhoes", optional("municipio", municipality))
}

func (a *API) Bases(ctx context.Context, municipality string) (any, error) {
	return a.r.Get(ctx, "/api/geo/bases", optional("municipio", municipality))
}

func (a *API) GeoVehicles(ctx context.Context, filters url.Values) (any, error) {
	return a.r.Get(ctx, "/api/geo/viaturas", compact(filters))
}

func (a *API) UploadGeoJSON(ctx context.Context, kind, fileName string, file io.Reader) (any, error) {
	return a.r.Upload(ctx, "/api/geo/upload", fileName, file, map[string]string{"tipo": kind})
}

func (a *API) KPIs(ctx context.Context) (any, error) {
	return a.r.Get(ctx, "/api/dashboard/kpis", nil)
}

func (a *API) LifespanByCategory(ctx context.Context) (any, error) {
	return a.r.Get(ctx, "/api/dashboard/vida_util_por_categoria", nil)
}

func (a *API) FipeByCategory(ctx context.Context) (any, error) {
	return a.r.Get(ctx, "/api/dashboard/fipe_por_categoria", nil)
}

// TopMileage returns the vehicles with the highest mileage. A non positive
// limit falls back to DefaultTopLimit. Same for TopHours and TopMaintenance.
func (a *API) TopMileage(ctx context.Context, limit int) (any, error) {
	return a.r.Get(ctx, "/api/dashboard/top_rodados", limitParam(limit))
}

func (a *API) TopHours(ctx context.Context, limit int) (any, error) {
	return a.r.Get(ctx, "/api/dashboard/top_horas", limitParam(limit))
}

func (a *API) TopMaintenance(ctx context.Context, limit int) (any, error) {
	return a.r.Get(ctx, "/api/dashboard/top_manutencoes", limitParam(limit))
}

func (a *API) Recommendations(ctx context.Context) (any, error) {
	return a.r.Get(ctx, "/api/recomendacoes", nil)
}

func (a *API) Organizations(ctx context.Context, kind string) (any, error) {
	return a.r.Get(ctx, "/api/organizacoes", optional("tipo", kind))
}

func (a *API) OrganizationChildren(ctx context.Context, id string) (any, error) {
	return a.r.Get(ctx, "/api/organizacoes/"+url.PathEscape(id)+"/filhos", nil)
}

func (a *API) Parameters(ctx context.Context) (any, error) {
	return a.r.Get(ctx, "/api/admin/parametros", nil)
}

func (a *API) UpdateParameters(ctx context.Context, params any) (any, error) {
	return a.r.Put(ctx, "/api/admin/parametros", params)
}

func (a *API) Municipalities(ctx context.Context) (any, error) {
	return a.r.Get(ctx, "/api/municipios", nil)
}

func (a *API) Neighborhoods(ctx context.Context, municipality string) (any, error) {
	return a.r.Get(ctx, "/api/bairros", optional("municipio", municipality))
}

func (a *API) Categories(ctx context.Context) (any, error) {
	return a.r.Get(ctx, "/api/categorias", nil)
}

func optional(name, value string) url.Values {
	if len(value) == 0 {
		return nil
	}

	return url.Values{name: []string{value}}
}

func limitParam(limit int) url.Values {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	return url.Values{"limit": []string{strconv.Itoa(limit)}}
}

// compact drops filters without a value.
func compact(filters url.Values) url.Values {
	var result url.Values

	for name, values := range filters {
		for _, value := range values {
			if len(value) == 0 {
				continue
			}

			if result == nil {
				result = make(url.Values)
			}

			result.Add(name, value)
		}
	}

	return result
}
