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

// AdminPermission is a single management permission token as understood by
// the SFTPGo management API.
// +kubebuilder:validation:Enum=*;add_users;edit_users;del_users;view_users;view_conns;close_conns;view_status;manage_admins;manage_groups;manage_apikeys;quota_scans;manage_system;manage_defender;view_defender;retention_checks;metadata_checks;view_events;manage_event_rules;manage_roles;manage_ip_lists
type AdminPermission string

const (
	AdminPermissionAll              AdminPermission = "*"
	AdminPermissionAddUsers         AdminPermission = "add_users"
	AdminPermissionEditUsers        AdminPermission = "edit_users"
	AdminPermissionDelUsers         AdminPermission = "del_users"
	AdminPermissionViewUsers        AdminPermission = "view_users"
	AdminPermissionViewConns        AdminPermission = "view_conns"
	AdminPermissionCloseConns       AdminPermission = "close_conns"
	AdminPermissionViewStatus       AdminPermission = "view_status"
	AdminPermissionManageAdmins     AdminPermission = "manage_admins"
	AdminPermissionManageGroups     AdminPermission = "manage_groups"
	AdminPermissionManageAPIKeys    AdminPermission = "manage_apikeys"
	AdminPermissionQuotaScans       AdminPermission = "quota_scans"
	AdminPermissionManageSystem     AdminPermission = "manage_system"
	AdminPermissionManageDefender   AdminPermission = "manage_defender"
	AdminPermissionViewDefender     AdminPermission = "view_defender"
	AdminPermissionRetentionChecks  AdminPermission = "retention_checks"
	AdminPermissionMetadataChecks   AdminPermission = "metadata_checks"
	AdminPermissionViewEvents       AdminPermission = "view_events"
	AdminPermissionManageEventRules AdminPermission = "manage_event_rules"
	AdminPermissionManageRoles      AdminPermission = "manage_roles"
	AdminPermissionManageIPLists    AdminPermission = "manage_ip_lists"
)

// SftpgoAdminConfiguration carries the fields sent to the management API
// when the admin is created or updated.
type SftpgoAdminConfiguration struct {
	Username string `json:"username"`

	// Optional description, for example the admin full name.
	// +optional
	Description *string `json:"description,omitempty"`

	// Password of the admin. Changes to this field will not propagate after
	// creation as we have no way of retrieving the password from the server
	// for comparison.
	Password string `json:"password"`

	// +optional
	Enabled *EnabledState `json:"enabled,omitempty"`

	// +optional
	Email *string `json:"email,omitempty"`

	Permissions []AdminPermission `json:"permissions"`

	// If set the admin can only administer users with the same role. Role
	// admins cannot have the following permissions: "manage_admins",
	// "manage_apikeys", "manage_system", "manage_event_rules",
	// "manage_roles", "manage_ip_lists".
	// +optional
	Role *string `json:"role,omitempty"`
}

// SftpgoAdminSpec defines the desired state of SftpgoAdmin.
type SftpgoAdminSpec struct {
	Configuration SftpgoAdminConfiguration `json:"configuration"`

	ServerReference ServerReference `json:"sftpgoServerReference"`
}

// SftpgoAdminStatus records what the operator last pushed to the server.
type SftpgoAdminStatus struct {
	// +optional
	LastUsername string `json:"lastUsername,omitempty"`

	// +optional
	AdminID *int64 `json:"adminId,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// SftpgoAdmin is the Schema for the sftpgoadmins API.
type SftpgoAdmin struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SftpgoAdminSpec   `json:"spec,omitempty"`
	Status SftpgoAdminStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// SftpgoAdminList contains a list of SftpgoAdmin.
type SftpgoAdminList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SftpgoAdmin `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SftpgoAdmin{}, &SftpgoAdminList{})
}
