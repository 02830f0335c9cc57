// Copyright 2025 The miyuw Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package annotate

// Marker is a marker code and the label it expands to.
type Marker struct {
	// Code is the marker code as it appears in definition text.
	Code string

	// Label is the human readable language or era name.
	Label string
}

// DefaultMarkers is the default marker table.
var DefaultMarkers = []Marker{
	{Code: "01", Label: "Ön Türkçe"},
	{Code: "02", Label: "Moğolca"},
	{Code: "03", Label: "Eski Anadolu Türkçesi"},
	{Code: "04", Label: "Osmanlı Türkçesi"},
	{Code: "05", Label: "Türkiye Türkçesi"},
	{Code: "06", Label: "Azerbaycan Türkçesi"},
	{Code: "07", Label: "Kırgız Türkçesi"},
	{Code: "08", Label: "Başkurt Türkçesi"},
	{Code: "09", Label: "Kazak Türkçesi"},
	{Code: "10", Label: "Kırgız Türkçesi"},
	{Code: "11", Label: "Özbek Türkçesi"},
	{Code: "12", Label: "Tatar Türkçesi"},
	{Code: "13", Label: "Türkmen Türkçesi"},
	{Code: "14", Label: "Uygur Türkçesi"},
	{Code: "15", Label: "Çuvaş Türkçesi"},
	{Code: "16", Label: "Göktürk Türkçesi"},
	{Code: "17", Label: "Karahanlı Türkçesi"},
}
