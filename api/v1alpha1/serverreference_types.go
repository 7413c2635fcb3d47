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

// ConnectionSecretRef points at an existing Secret holding the url, username
// and password keys used to reach a SFTPGo management API.
type ConnectionSecretRef struct {
	Name string `json:"name"`

	// Namespace of the Secret. Defaults to the namespace of the referring
	// resource.
	// +optional
	Namespace *string `json:"namespace,omitempty"`
}

// ConnectionOverrides replaces individual values resolved from the admin
// Secret. Useful when the in-cluster Service address is not reachable from
// wherever the operator runs.
type ConnectionOverrides struct {
	// +optional
	URL *string `json:"url,omitempty"`
	// +optional
	Username *string `json:"username,omitempty"`
	// +optional
	Password *string `json:"password,omitempty"`
}

// ServerReference selects the SFTPGo instance a domain resource targets.
// Exactly one of name or connectionSecret must be set.
type ServerReference struct {
	// Name of a SftpgoServer resource managed by this operator. The admin
	// credentials are read from the Secret the server controller maintains.
	// +optional
	Name *string `json:"name,omitempty"`

	// Namespace of the SftpgoServer resource. Defaults to the namespace of
	// the referring resource.
	// +optional
	Namespace *string `json:"namespace,omitempty"`

	// ConnectionSecret points at an arbitrary Secret with connection
	// details, for SFTPGo instances not managed by this operator.
	// +optional
	ConnectionSecret *ConnectionSecretRef `json:"connectionSecret,omitempty"`

	// +optional
	OverrideValues *ConnectionOverrides `json:"overrideValues,omitempty"`
}
