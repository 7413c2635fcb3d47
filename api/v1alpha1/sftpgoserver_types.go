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

// SftpgoServerSpec defines the desired state of a SFTPGo instance.
type SftpgoServerSpec struct {
	// Configuration is passed to the SFTPGo container as flattened
	// environment variables.
	// +optional
	Configuration *ServerConfiguration `json:"configuration,omitempty"`

	// +optional
	Replicas *int32 `json:"replicas,omitempty"`

	// Container image to run. Defaults to drakkan/sftpgo:v2.5.
	// +optional
	Image *string `json:"image,omitempty"`

	// Extra labels applied to every rendered child object.
	// +optional
	Labels map[string]string `json:"labels,omitempty"`

	// +optional
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:shortName=sftpgo

// SftpgoServer is the Schema for the sftpgoservers API.
type SftpgoServer struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec SftpgoServerSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// SftpgoServerList contains a list of SftpgoServer.
type SftpgoServerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SftpgoServer `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SftpgoServer{}, &SftpgoServerList{})
}
