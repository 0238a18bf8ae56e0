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

// Package resource holds the named value producers sampled by a subject and
// the ordered registry they are looked up from.
package resource

//go:generate mockgen -source=producer.go -destination=../mocks/resource_mock.go -package=mocks

// Producer yields the current value of one resource together with its unit
// label. A Producer is owned by whoever created it, the Registry only
// borrows it.
type Producer interface {
	Get() float64
	Unit() string
}

// Entry is one registry slot.
type Entry struct {
	Name     string
	Producer Producer
}
