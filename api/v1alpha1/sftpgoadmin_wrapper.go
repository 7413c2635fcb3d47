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

package v1alpha1

var _ DomainObject = &SftpgoAdmin{}

func (a *SftpgoAdmin) GetServerReference() *ServerReference {
	return &a.Spec.ServerReference
}

func (a *SftpgoAdmin) GetLastName() string {
	return a.Status.LastUsername
}

func (a *SftpgoAdmin) SetLastName(name string) {
	a.Status.LastUsername = name
}

func (a *SftpgoAdmin) GetEntityID() *int64 {
	return a.Status.AdminID
}

func (a *SftpgoAdmin) SetEntityID(id *int64) {
	a.Status.AdminID = id
}
