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

	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
)

// foldersToUsers maps a changed SftpgoFolder to every SftpgoUser that mounts
// it as a virtual folder.
func foldersToUsers(c client.Client) handler.MapFunc {
	return func(ctx context.Context, obj client.Object) []reconcile.Request {
		log := ctrl.LoggerFrom(ctx)

		folder, ok := obj.(*v1alpha1.SftpgoFolder)
		if !ok {
			return nil
		}

		users := &v1alpha1.SftpgoUserList{}
		if err := c.List(ctx, users); err != nil {
			log.Error(err, "Failed to list users for folder mapping")

			return nil
		}

		var requests []reconcile.Request

		for i := range users.Items {
			user := &users.Items[i]

			if userMountsFolder(user, folder) {
				requests = append(requests, reconcile.Request{
					NamespacedName: types.NamespacedName{
						Namespace: user.Namespace,
						Name:      user.Name,
					},
				})
			}
		}

		return requests
	}
}

func userMountsFolder(user *v1alpha1.SftpgoUser, folder *v1alpha1.SftpgoFolder) bool {
	for _, ref := range user.Spec.Configuration.VirtualFolders {
		folderNamespace := user.Namespace
		if ref.Namespace != nil {
			folderNamespace = *ref.Namespace
		}

		if ref.Name == folder.Name && folderNamespace == folder.Namespace {
			return true
		}
	}

	return false
}
