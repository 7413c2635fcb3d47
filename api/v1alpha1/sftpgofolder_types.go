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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// SftpgoFolderConfiguration defines the filesystem for a virtual folder. The
// same folder can be shared among multiple users and each user can mount it
// with different quota limits or a different virtual path.
type SftpgoFolderConfiguration struct {
	// Unique name for this virtual folder.
	Name string `json:"name"`

	// Absolute filesystem path to use as virtual folder.
	MappedPath string `json:"mappedPath"`

	// +optional
	Description *string `json:"description,omitempty"`

	FileSystem FileSystem `json:"filesystem"`
}

// SftpgoFolderSpec defines the desired state of SftpgoFolder.
type SftpgoFolderSpec struct {
	Configuration SftpgoFolderConfiguration `json:"configuration"`

	ServerReference ServerReference `json:"sftpgoServerReference"`
}

// SftpgoFolderStatus records what the operator last pushed to the server.
type SftpgoFolderStatus struct {
	// +optional
	LastName string `json:"lastName,omitempty"`

	// +optional
	FolderID *int64 `json:"folderId,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// SftpgoFolder is the Schema for the sftpgofolders API.
type SftpgoFolder struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SftpgoFolderSpec   `json:"spec,omitempty"`
	Status SftpgoFolderStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// SftpgoFolderList contains a list of SftpgoFolder.
type SftpgoFolderList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SftpgoFolder `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SftpgoFolder{}, &SftpgoFolderList{})
}
