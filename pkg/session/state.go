// Copyright 2025 walteh LLC
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

package session

// 🚦 State is a step of the interactive session
type State int

const (
	AwaitInputPath State = iota
	Reading
	SelectTransform
	Transforming
	AwaitOutputPath
	Writing
	ShowPreview
	Done
)

func (s State) String() string {
	switch s {
	case AwaitInputPath:
		return "await_input_path"
	case Reading:
		return "reading"
	case SelectTransform:
		return "select_transform"
	case Transforming:
		return "transforming"
	case AwaitOutputPath:
		return "await_output_path"
	case Writing:
		return "writing"
	case ShowPreview:
		return "preview"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// 🏁 Result is how a session ended
type Result int

const (
	// ResultCompleted means the output file was written and previewed
	ResultCompleted Result = iota + 1
	// ResultAborted means the user chose not to retry after a failure or decline
	ResultAborted
	// ResultInterrupted means a signal arrived while waiting for input
	ResultInterrupted
	// ResultFailed means something unexpected ended the session
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultCompleted:
		return "completed"
	case ResultAborted:
		return "aborted"
	case ResultInterrupted:
		return "interrupted"
	case ResultFailed:
		return "failed"
	default:
		return "unknown"
	}
}
