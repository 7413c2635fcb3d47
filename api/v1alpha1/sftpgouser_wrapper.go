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

var _ DomainObject = &SftpgoUser{}

func (u *SftpgoUser) GetServerReference() *ServerReference {
	return &u.Spec.ServerReference
}

func (u *SftpgoUser) GetLastName() string {
	return u.Status.LastUsername
}

func (u *SftpgoUser) SetLastName(name string) {
	u.Status.LastUsername = name
}

func (u *SftpgoUser) GetEntityID() *int64 {
	return u.Status.UserID
}

func (u *SftpgoUser) SetEntityID(id *int64) {
	u.Status.UserID = id
}
