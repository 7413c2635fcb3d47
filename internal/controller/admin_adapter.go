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

// AdminAdapter maps SftpgoAdmin resources to /api/v2/admins entities.
type AdminAdapter struct{}

func (AdminAdapter) Path() string {
	return sftpgo.PathAdmins
}

func (AdminAdapter) NewObject() v1alpha1.DomainObject {
	return &v1alpha1.SftpgoAdmin{}
}

func (AdminAdapter) EntityName(obj v1alpha1.DomainObject) string {
	return obj.(*v1alpha1.SftpgoAdmin).Spec.Configuration.Username
}

func (AdminAdapter) BuildRequest(ctx context.Context, reader client.Reader, obj v1alpha1.DomainObject) (any, error) {
	config := &obj.(*v1alpha1.SftpgoAdmin).Spec.Configuration

	permissions := make([]string, 0, len(config.Permissions))
	for _, permission := range config.Permissions {
		permissions = append(permissions, string(permission))
	}

	if len(permissions) == 0 {
		permissions = []string{string(v1alpha1.AdminPermissionAll)}
	}

	admin := &sftpgo.Admin{
		Status:      enabledStatus(config.Enabled),
		Username:    config.Username,
		Password:    config.Password,
		Permissions: permissions,
	}

	if config.Description != nil {
		admin.Description = *config.Description
	}

	if config.Email != nil {
		admin.Email = *config.Email
	}

	if config.Role != nil {
		admin.Role = *config.Role
	}

	return admin, nil
}
