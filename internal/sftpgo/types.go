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

// Package sftpgo is a minimal client for the SFTPGo management REST API,
// covering the token endpoint and the user, folder and admin collections.
package sftpgo

// Entity status values. SFTPGo encodes enabled/disabled as an integer.
const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

// Filesystem provider discriminators on the wire.
const (
	FilesystemProviderLocal     = 0
	FilesystemProviderAzureBlob = 3
)

// SecretStatusPlain marks an in-band secret as plaintext. The server encrypts
// it with its own key on receipt.
const SecretStatusPlain = "Plain"

// Collection paths under the management API root.
const (
	PathUsers   = "/api/v2/users"
	PathFolders = "/api/v2/folders"
	PathAdmins  = "/api/v2/admins"
)

// Secret is SFTPGo's envelope for sensitive values such as account keys and
// user passwords inside filesystem configs.
type Secret struct {
	Status  string `json:"status"`
	Payload string `json:"payload"`
}

// PlainSecret wraps a plaintext value for server-side encryption.
func PlainSecret(payload string) *Secret {
	return &Secret{Status: SecretStatusPlain, Payload: payload}
}

// OSFsConfig is the local filesystem provider config.
type OSFsConfig struct {
	ReadBufferSize  int `json:"read_buffer_size,omitempty"`
	WriteBufferSize int `json:"write_buffer_size,omitempty"`
}

// AzBlobFsConfig is the Azure Blob Storage provider config.
type AzBlobFsConfig struct {
	Container           string  `json:"container,omitempty"`
	AccountName         string  `json:"account_name,omitempty"`
	AccountKey          *Secret `json:"account_key,omitempty"`
	SASURL              *Secret `json:"sas_url,omitempty"`
	Endpoint            string  `json:"endpoint,omitempty"`
	UploadPartSize      int64   `json:"upload_part_size,omitempty"`
	UploadConcurrency   int32   `json:"upload_concurrency,omitempty"`
	DownloadPartSize    int64   `json:"download_part_size,omitempty"`
	DownloadConcurrency int32   `json:"download_concurrency,omitempty"`
	AccessTier          string  `json:"access_tier,omitempty"`
	KeyPrefix           string  `json:"key_prefix,omitempty"`
	UseEmulator         bool    `json:"use_emulator,omitempty"`
}

// Filesystem selects a storage provider for a user or folder.
type Filesystem struct {
	Provider     int             `json:"provider"`
	OSConfig     *OSFsConfig     `json:"osconfig,omitempty"`
	AzBlobConfig *AzBlobFsConfig `json:"azblobconfig,omitempty"`
}

// VirtualFolder mounts a named folder into a user's virtual tree. The folder
// must already exist server-side; it is referenced by name only.
type VirtualFolder struct {
	Name        string `json:"name"`
	VirtualPath string `json:"virtual_path"`
	QuotaSize   int64  `json:"quota_size,omitempty"`
	QuotaFiles  int32  `json:"quota_files,omitempty"`
}

// User is the request/response shape of /api/v2/users.
type User struct {
	ID                   int64               `json:"id,omitempty"`
	Status               int                 `json:"status"`
	Username             string              `json:"username"`
	Email                string              `json:"email,omitempty"`
	Description          string              `json:"description,omitempty"`
	ExpirationDate       int64               `json:"expiration_date,omitempty"`
	Password             string              `json:"password,omitempty"`
	PublicKeys           []string            `json:"public_keys,omitempty"`
	HomeDir              string              `json:"home_dir"`
	UID                  int32               `json:"uid,omitempty"`
	GID                  int32               `json:"gid,omitempty"`
	MaxSessions          int32               `json:"max_sessions,omitempty"`
	QuotaSize            int64               `json:"quota_size,omitempty"`
	QuotaFiles           int32               `json:"quota_files,omitempty"`
	Permissions          map[string][]string `json:"permissions"`
	UploadBandwidth      int64               `json:"upload_bandwidth,omitempty"`
	DownloadBandwidth    int64               `json:"download_bandwidth,omitempty"`
	UploadDataTransfer   int64               `json:"upload_data_transfer,omitempty"`
	DownloadDataTransfer int64               `json:"download_data_transfer,omitempty"`
	TotalDataTransfer    int64               `json:"total_data_transfer,omitempty"`
	Filesystem           Filesystem          `json:"filesystem"`
	VirtualFolders       []VirtualFolder     `json:"virtual_folders,omitempty"`
}

// Folder is the request/response shape of /api/v2/folders.
type Folder struct {
	ID          int64      `json:"id,omitempty"`
	Name        string     `json:"name"`
	MappedPath  string     `json:"mapped_path,omitempty"`
	Description string     `json:"description,omitempty"`
	Filesystem  Filesystem `json:"filesystem"`
}

// Admin is the request/response shape of /api/v2/admins.
type Admin struct {
	ID          int64    `json:"id,omitempty"`
	Status      int      `json:"status"`
	Username    string   `json:"username"`
	Description string   `json:"description,omitempty"`
	Password    string   `json:"password,omitempty"`
	Email       string   `json:"email,omitempty"`
	Permissions []string `json:"permissions"`
	Role        string   `json:"role,omitempty"`
}

// EntityRef is the subset of every entity response the controllers track.
type EntityRef struct {
	ID int64 `json:"id"`
}
