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
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-operator/internal/sftpgo"
)

// FolderAdapter maps SftpgoFolder resources to /api/v2/folders entities.
type FolderAdapter struct{}

func (FolderAdapter) Path() string {
	return sftpgo.PathFolders
}

func (FolderAdapter) NewObject() v1alpha1.DomainObject {
	return &v1alpha1.SftpgoFolder{}
}

func (FolderAdapter) EntityName(obj v1alpha1.DomainObject) string {
	return obj.(*v1alpha1.SftpgoFolder).Spec.Configuration.Name
}

func (FolderAdapter) BuildRequest(ctx context.Context, reader client.Reader, obj v1alpha1.DomainObject) (any, error) {
	config := &obj.(*v1alpha1.SftpgoFolder).Spec.Configuration

	filesystem, err := buildFilesystem(&config.FileSystem)
	if err != nil {
		return nil, err
	}

	folder := &sftpgo.Folder{
		Name:       config.Name,
		MappedPath: config.MappedPath,
		Filesystem: filesystem,
	}

	if config.Description != nil {
		folder.Description = *config.Description
	}

	return folder, nil
}
