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
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-operator/internal/sftpgo"
)

// UserAdapter maps SftpgoUser resources to /api/v2/users entities.
type UserAdapter struct{}

func (UserAdapter) Path() string {
	return sftpgo.PathUsers
}

func (UserAdapter) NewObject() v1alpha1.DomainObject {
	return &v1alpha1.SftpgoUser{}
}

func (UserAdapter) EntityName(obj v1alpha1.DomainObject) string {
	return obj.(*v1alpha1.SftpgoUser).Spec.Configuration.Username
}

func (UserAdapter) BuildRequest(ctx context.Context, reader client.Reader, obj v1alpha1.DomainObject) (any, error) {
	config := &obj.(*v1alpha1.SftpgoUser).Spec.Configuration

	filesystem, err := buildFilesystem(&config.FileSystem)
	if err != nil {
		return nil, err
	}

	virtualFolders, err := resolveVirtualFolders(ctx, reader, obj.GetNamespace(), config.VirtualFolders)
	if err != nil {
		return nil, err
	}

	user := &sftpgo.User{
		Status:         enabledStatus(config.Enabled),
		Username:       config.Username,
		Password:       config.Password,
		PublicKeys:     config.PublicKeys,
		HomeDir:        config.HomeDir,
		Permissions:    buildPermissions(config.GlobalPermissions, config.PerDirectoryPermissions),
		Filesystem:     filesystem,
		VirtualFolders: virtualFolders,
	}

	if config.Email != nil {
		user.Email = *config.Email
	}

	if config.Description != nil {
		user.Description = *config.Description
	}

	if config.ExpirationDate != nil {
		user.ExpirationDate = *config.ExpirationDate
	}

	if config.UID != nil {
		user.UID = *config.UID
	}

	if config.GID != nil {
		user.GID = *config.GID
	}

	if config.MaxSessions != nil {
		user.MaxSessions = *config.MaxSessions
	}

	if config.QuotaSize != nil {
		user.QuotaSize = *config.QuotaSize
	}

	if config.QuotaFiles != nil {
		user.QuotaFiles = *config.QuotaFiles
	}

	if config.UploadBandwidth != nil {
		user.UploadBandwidth = *config.UploadBandwidth
	}

	if config.DownloadBandwidth != nil {
		user.DownloadBandwidth = *config.DownloadBandwidth
	}

	if config.UploadDataTransfer != nil {
		user.UploadDataTransfer = *config.UploadDataTransfer
	}

	if config.DownloadDataTransfer != nil {
		user.DownloadDataTransfer = *config.DownloadDataTransfer
	}

	if config.TotalDataTransfer != nil {
		user.TotalDataTransfer = *config.TotalDataTransfer
	}

	return user, nil
}

// registerWatches enqueues users when a folder they mount changes, so a
// newly assigned folder id unblocks users waiting in NotReady.
func (UserAdapter) registerWatches(mgr ctrl.Manager, b *ctrl.Builder) *ctrl.Builder {
	return b.Watches(
		&v1alpha1.SftpgoFolder{},
		handler.EnqueueRequestsFromMapFunc(foldersToUsers(mgr.GetClient())),
	)
}

// buildPermissions assembles the wire permission map: global permissions at
// "/", defaulting to the catch-all token, plus one entry per directory grant.
func buildPermissions(global []v1alpha1.UserPermission, perDirectory []v1alpha1.DirectoryPermissions) map[string][]string {
	permissions := map[string][]string{
		"/": permissionTokens(global),
	}

	for _, directory := range perDirectory {
		permissions[directory.Path] = permissionTokens(directory.Permissions)
	}

	return permissions
}

func permissionTokens(permissions []v1alpha1.UserPermission) []string {
	if len(permissions) == 0 {
		return []string{string(v1alpha1.UserPermissionAll)}
	}

	tokens := make([]string, 0, len(permissions))
	for _, permission := range permissions {
		tokens = append(tokens, string(permission))
	}

	return tokens
}

// resolveVirtualFolders looks up every referenced SftpgoFolder resource and
// translates it to the wire shape. A folder that does not exist yet, or whose
// id has not been assigned, makes the user NotReady.
func resolveVirtualFolders(ctx context.Context, reader client.Reader, namespace string, refs []v1alpha1.VirtualFolderReference) ([]sftpgo.VirtualFolder, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	virtualFolders := make([]sftpgo.VirtualFolder, 0, len(refs))

	for _, ref := range refs {
		folderNamespace := namespace
		if ref.Namespace != nil {
			folderNamespace = *ref.Namespace
		}

		folder := &v1alpha1.SftpgoFolder{}
		if err := reader.Get(ctx, types.NamespacedName{Namespace: folderNamespace, Name: ref.Name}, folder); err != nil {
			if apierrors.IsNotFound(err) {
				return nil, &NotReadyError{Reason: fmt.Sprintf("virtual folder %s/%s does not exist", folderNamespace, ref.Name)}
			}

			return nil, fmt.Errorf("failed to read virtual folder %s/%s: %w", folderNamespace, ref.Name, err)
		}

		if folder.Status.FolderID == nil {
			return nil, &NotReadyError{Reason: fmt.Sprintf("virtual folder %s/%s has not been created server-side yet", folderNamespace, ref.Name)}
		}

		virtualFolder := sftpgo.VirtualFolder{
			Name:        folder.Status.LastName,
			VirtualPath: ref.VirtualPath,
		}

		if ref.QuotaSize != nil {
			virtualFolder.QuotaSize = *ref.QuotaSize
		}

		if ref.QuotaFiles != nil {
			virtualFolder.QuotaFiles = *ref.QuotaFiles
		}

		virtualFolders = append(virtualFolders, virtualFolder)
	}

	return virtualFolders, nil
}

func enabledStatus(enabled *v1alpha1.EnabledState) int {
	if enabled != nil && *enabled == v1alpha1.Disabled {
		return sftpgo.StatusDisabled
	}

	return sftpgo.StatusEnabled
}
