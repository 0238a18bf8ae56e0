// Copyright 2025 TimeWtr
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package notify

import (
	"strconv"
	"strings"

	"github.com/TimeWtr/Beacon/resource"
)

const valuePrecision = 6

// Format renders one message line: "<label> utilization: <value> <unit>\n".
// Values use up to six significant digits, integral values have no
// fractional part.
func Format(label string, value float64, unit string) string {
	var sb strings.Builder
	sb.Grow(len(label) + len(unit) + 32)
	sb.WriteString(label)
	sb.WriteString(" utilization: ")
	sb.WriteString(strconv.FormatFloat(value, 'g', valuePrecision, 64))
	sb.WriteByte(' ')
	sb.WriteString(unit)
	sb.WriteByte('\n')
	return sb.String()
}

// Render samples p once and formats the result.
func Render(label string, p resource.Producer) string {
	return Format(label, p.Get(), p.Unit())
}
