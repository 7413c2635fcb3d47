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

package controller

import (
	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-operator/internal/sftpgo"
)

// buildFilesystem maps a declarative filesystem block to the wire shape. An
// empty block means the local filesystem with default settings. Secrets are
// sent plaintext and encrypted server-side.
func buildFilesystem(fs *v1alpha1.FileSystem) (sftpgo.Filesystem, error) {
	if fs == nil {
		return sftpgo.Filesystem{Provider: sftpgo.FilesystemProviderLocal}, nil
	}

	if fs.Local != nil && fs.AzureBlobStorage != nil {
		return sftpgo.Filesystem{}, newUserInputError("filesystem sets both local and azureBlobStorage")
	}

	if fs.AzureBlobStorage != nil {
		return buildAzureBlobFilesystem(fs.AzureBlobStorage)
	}

	filesystem := sftpgo.Filesystem{Provider: sftpgo.FilesystemProviderLocal}

	if local := fs.Local; local != nil && (local.ReadBufferSize != nil || local.WriteBufferSize != nil) {
		config := &sftpgo.OSFsConfig{}

		if local.ReadBufferSize != nil {
			config.ReadBufferSize = int(*local.ReadBufferSize)
		}

		if local.WriteBufferSize != nil {
			config.WriteBufferSize = int(*local.WriteBufferSize)
		}

		filesystem.OSConfig = config
	}

	return filesystem, nil
}

func buildAzureBlobFilesystem(azure *v1alpha1.AzureBlobStorageFileSystem) (sftpgo.Filesystem, error) {
	config := &sftpgo.AzBlobFsConfig{}

	auth := azure.Authorization

	switch {
	case auth.SharedKey != nil && auth.SharedAccessSignatureURL != nil:
		return sftpgo.Filesystem{}, newUserInputError("azureBlobStorage authorization sets both sharedKey and sharedAccessSignatureUrl")
	case auth.SharedKey != nil:
		config.Container = auth.SharedKey.Container
		config.AccountName = auth.SharedKey.AccountName
		config.AccountKey = sftpgo.PlainSecret(auth.SharedKey.AccountKey)
	case auth.SharedAccessSignatureURL != nil:
		config.SASURL = sftpgo.PlainSecret(*auth.SharedAccessSignatureURL)
	default:
		return sftpgo.Filesystem{}, newUserInputError("azureBlobStorage authorization sets neither sharedKey nor sharedAccessSignatureUrl")
	}

	if azure.Endpoint != nil {
		config.Endpoint = *azure.Endpoint
	}

	if azure.UploadPartSize != nil {
		config.UploadPartSize = int64(*azure.UploadPartSize)
	}

	if azure.UploadConcurrency != nil {
		config.UploadConcurrency = *azure.UploadConcurrency
	}

	if azure.DownloadPartSize != nil {
		config.DownloadPartSize = int64(*azure.DownloadPartSize)
	}

	if azure.DownloadConcurrency != nil {
		config.DownloadConcurrency = *azure.DownloadConcurrency
	}

	if azure.AccessTier != nil {
		config.AccessTier = string(*azure.AccessTier)
	}

	if azure.KeyPrefix != nil {
		config.KeyPrefix = *azure.KeyPrefix
	}

	if azure.UseEmulator != nil {
		config.UseEmulator = *azure.UseEmulator
	}

	return sftpgo.Filesystem{
		Provider:     sftpgo.FilesystemProviderAzureBlob,
		AzBlobConfig: config,
	}, nil
}
