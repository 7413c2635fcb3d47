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

// LocalFileSystem stores files on the filesystem of the SFTPGo pod.
type LocalFileSystem struct {
	// +optional
	ReadBufferSize *int32 `json:"readBufferSize,omitempty"`
	// +optional
	WriteBufferSize *int32 `json:"writeBufferSize,omitempty"`
}

// AzureBlobStorageSharedKey authorizes against a storage account with the
// account key.
type AzureBlobStorageSharedKey struct {
	// The name of the container to use. SFTPGo does not create this
	// automatically, so make sure it exists before using it here.
	Container   string `json:"container"`
	AccountName string `json:"accountName"`
	AccountKey  string `json:"accountKey"`
}

// AzureBlobStorageAuthorization holds exactly one way of authorizing against
// Azure Blob Storage.
type AzureBlobStorageAuthorization struct {
	// +optional
	SharedKey *AzureBlobStorageSharedKey `json:"sharedKey,omitempty"`
	// +optional
	SharedAccessSignatureURL *string `json:"sharedAccessSignatureUrl,omitempty"`
}

// AzureBlobStorageAccessTier selects the storage tier for uploaded blobs.
// +kubebuilder:validation:Enum=Hot;Cool;Archive
type AzureBlobStorageAccessTier string

const (
	AzureBlobStorageAccessTierHot     AzureBlobStorageAccessTier = "Hot"
	AzureBlobStorageAccessTierCool    AzureBlobStorageAccessTier = "Cool"
	AzureBlobStorageAccessTierArchive AzureBlobStorageAccessTier = "Archive"
)

// AzureBlobStorageFileSystem stores files in an Azure Blob Storage container.
type AzureBlobStorageFileSystem struct {
	Authorization AzureBlobStorageAuthorization `json:"authorization"`

	// Optional endpoint. Default is "blob.core.windows.net". If you use the
	// emulator the endpoint must include the protocol, for example
	// "http://127.0.0.1:10000".
	// +optional
	Endpoint *string `json:"endpoint,omitempty"`

	// The buffer size (in MB) to use for multipart uploads. If unset the
	// SFTPGo default (5MB) applies.
	// +optional
	UploadPartSize *int32 `json:"uploadPartSize,omitempty"`

	// The number of parts to upload in parallel. If unset the SFTPGo
	// default (5) applies.
	// +optional
	UploadConcurrency *int32 `json:"uploadConcurrency,omitempty"`

	// The buffer size (in MB) to use for multipart downloads. If unset the
	// SFTPGo default (5MB) applies.
	// +optional
	DownloadPartSize *int32 `json:"downloadPartSize,omitempty"`

	// The number of parts to download in parallel. If unset the SFTPGo
	// default (5) applies.
	// +optional
	DownloadConcurrency *int32 `json:"downloadConcurrency,omitempty"`

	// +optional
	AccessTier *AzureBlobStorageAccessTier `json:"accessTier,omitempty"`

	// KeyPrefix is similar to a chroot directory for a local filesystem. If
	// specified the user will only see contents starting with this prefix.
	// The prefix, if not empty, must not start with "/" and must end with
	// "/". If empty the whole container contents will be available.
	// +optional
	KeyPrefix *string `json:"keyPrefix,omitempty"`

	// +optional
	UseEmulator *bool `json:"useEmulator,omitempty"`
}

// FileSystem describes where a user home directory or virtual folder keeps
// its data. Exactly one member must be set.
type FileSystem struct {
	// +optional
	Local *LocalFileSystem `json:"local,omitempty"`
	// +optional
	AzureBlobStorage *AzureBlobStorageFileSystem `json:"azureBlobStorage,omitempty"`
}
