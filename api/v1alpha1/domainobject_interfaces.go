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

import (
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// DomainObject describes the operations shared by every custom resource that
// maps to a single entity in the SFTPGo management API (users, folders,
// admins). It is what lets one reconciler drive all three kinds.
//
// +kubebuilder:object:generate=false
type DomainObject interface {
	client.Object

	GetServerReference() *ServerReference

	// GetLastName returns the name the server-side entity was last created
	// under, or "" if the resource has never been synced.
	GetLastName() string
	SetLastName(name string)

	// GetEntityID returns the server-assigned id, or nil if the entity has
	// not been created yet.
	GetEntityID() *int64
	SetEntityID(id *int64)
}
