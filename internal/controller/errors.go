/*
Copyright 2023 The SFTPGo Operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import "fmt"

// NotReadyError signals that a dependent resource has not materialized yet,
// for example a virtual folder whose id is still unknown. The reconcile is
// requeued; the dependent's own reconcile will eventually unblock it.
type NotReadyError struct {
	Reason string
}

func (e *NotReadyError) Error() string {
	return "not ready: " + e.Reason
}

// UserInputError marks a contradiction or omission in a custom resource or
// its referenced Secret that only the resource author can fix.
type UserInputError struct {
	Reason string
}

func (e *UserInputError) Error() string {
	return "invalid resource: " + e.Reason
}

func newUserInputError(format string, args ...any) *UserInputError {
	return &UserInputError{Reason: fmt.Sprintf(format, args...)}
}
