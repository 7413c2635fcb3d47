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

// EnabledState toggles a server-side account on or off.
// +kubebuilder:validation:Enum=Enabled;Disabled
type EnabledState string

const (
	Enabled  EnabledState = "Enabled"
	Disabled EnabledState = "Disabled"
)

// UserPermission is a single filesystem permission token as understood by
// the SFTPGo management API.
// +kubebuilder:validation:Enum=*;list;download;upload;overwrite;create_dirs;rename;rename_files;rename_dirs;delete;delete_files;delete_dirs;create_symlinks;chmod;chown;chtimes
type UserPermission string

const (
	UserPermissionAll            UserPermission = "*"
	UserPermissionList           UserPermission = "list"
	UserPermissionDownload       UserPermission = "download"
	UserPermissionUpload         UserPermission = "upload"
	UserPermissionOverwrite      UserPermission = "overwrite"
	UserPermissionCreateDirs     UserPermission = "create_dirs"
	UserPermissionRename         UserPermission = "rename"
	UserPermissionRenameFiles    UserPermission = "rename_files"
	UserPermissionRenameDirs     UserPermission = "rename_dirs"
	UserPermissionDelete         UserPermission = "delete"
	UserPermissionDeleteFiles    UserPermission = "delete_files"
	UserPermissionDeleteDirs     UserPermission = "delete_dirs"
	UserPermissionCreateSymlinks UserPermission = "create_symlinks"
	UserPermissionChmod          UserPermission = "chmod"
	UserPermissionChown          UserPermission = "chown"
	UserPermissionChtimes        UserPermission = "chtimes"
)

// DirectoryPermissions grants permissions below a specific path instead of
// the whole home directory.
type DirectoryPermissions struct {
	Path        string           `json:"path"`
	Permissions []UserPermission `json:"permissions"`
}

// VirtualFolderReference mounts a SftpgoFolder into a user's directory tree.
type VirtualFolderReference struct {
	// The kubernetes resource name of the virtual folder.
	Name string `json:"name"`

	// The kubernetes namespace the folder is defined in, if different from
	// the namespace of this resource.
	// +optional
	Namespace *string `json:"namespace,omitempty"`

	// The path to mount the virtual folder at.
	VirtualPath string `json:"virtualPath"`

	// Quota as size in bytes. 0 means unlimited, -1 means included in the
	// user quota. Quota is updated when files are added or removed via
	// SFTPGo, otherwise a quota scan or manual quota update is needed.
	// +optional
	QuotaSize *int64 `json:"quotaSize,omitempty"`

	// Quota as number of files. 0 means unlimited, -1 means included in the
	// user quota.
	// +optional
	QuotaFiles *int32 `json:"quotaFiles,omitempty"`
}

// SftpgoUserConfiguration carries the fields sent to the management API when
// the user is created or updated.
type SftpgoUserConfiguration struct {
	Username string `json:"username"`

	// Password of the user. Changes to this field will not propagate to the
	// user after creation as we have no way of retrieving the password from
	// the server for comparison.
	Password string `json:"password"`

	// +optional
	Enabled *EnabledState `json:"enabled,omitempty"`

	// Permissions applied at the root of the user's home directory. If
	// empty, all permissions are granted.
	GlobalPermissions []UserPermission `json:"globalPermissions"`

	// +optional
	PerDirectoryPermissions []DirectoryPermissions `json:"perDirectoryPermissions,omitempty"`

	FileSystem FileSystem `json:"filesystem"`

	HomeDir string `json:"homeDir"`

	// +optional
	VirtualFolders []VirtualFolderReference `json:"virtualFolders,omitempty"`

	// +optional
	Email *string `json:"email,omitempty"`

	// +optional
	Description *string `json:"description,omitempty"`

	// Account expiration as unix timestamp in milliseconds, 0 means no
	// expiration.
	// +optional
	ExpirationDate *int64 `json:"expirationDate,omitempty"`

	// +optional
	PublicKeys []string `json:"publicKeys,omitempty"`

	// +optional
	UID *int32 `json:"uid,omitempty"`

	// +optional
	GID *int32 `json:"gid,omitempty"`

	// +optional
	MaxSessions *int32 `json:"maxSessions,omitempty"`

	// +optional
	QuotaSize *int64 `json:"quotaSize,omitempty"`

	// +optional
	QuotaFiles *int32 `json:"quotaFiles,omitempty"`

	// +optional
	UploadBandwidth *int64 `json:"uploadBandwidth,omitempty"`

	// +optional
	DownloadBandwidth *int64 `json:"downloadBandwidth,omitempty"`

	// +optional
	UploadDataTransfer *int64 `json:"uploadDataTransfer,omitempty"`

	// +optional
	DownloadDataTransfer *int64 `json:"downloadDataTransfer,omitempty"`

	// +optional
	TotalDataTransfer *int64 `json:"totalDataTransfer,omitempty"`
}

// SftpgoUserSpec defines the desired state of SftpgoUser.
type SftpgoUserSpec struct {
	Configuration SftpgoUserConfiguration `json:"configuration"`

	// Force the user to login again if connected, so the new configuration
	// takes effect immediately.
	// +optional
	DisconnectOnChange *bool `json:"disconnectOnChange,omitempty"`

	ServerReference ServerReference `json:"sftpgoServerReference"`
}

// SftpgoUserStatus records what the operator last pushed to the server.
type SftpgoUserStatus struct {
	// The username the server-side user was last created under. Usernames
	// are primary keys server-side, so a spec rename requires a delete and
	// recreate of the old name recorded here.
	// +optional
	LastUsername string `json:"lastUsername,omitempty"`

	// +optional
	UserID *int64 `json:"userId,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// SftpgoUser is the Schema for the sftpgousers API.
type SftpgoUser struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SftpgoUserSpec   `json:"spec,omitempty"`
	Status SftpgoUserStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// SftpgoUserList contains a list of SftpgoUser.
type SftpgoUserList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SftpgoUser `json:"items"`
}

func init() {
	SchemeBuilder.Register(&SftpgoUser{}, &SftpgoUserList{})
}
