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
	"testing"

	. "github.com/onsi/gomega"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
)

func userWithFolder(name, namespace, folderName string, folderNamespace *string) *v1alpha1.SftpgoUser {
	return &v1alpha1.SftpgoUser{
		ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: name},
		Spec: v1alpha1.SftpgoUserSpec{
			Configuration: v1alpha1.SftpgoUserConfiguration{
				Username: name,
				VirtualFolders: []v1alpha1.VirtualFolderReference{
					{Name: folderName, Namespace: folderNamespace, VirtualPath: "/mnt"},
				},
			},
		},
	}
}

func TestFoldersToUsers(t *testing.T) {
	g := NewWithT(t)

	c := newFakeClient(
		userWithFolder("alice", "default", "shared", nil),
		userWithFolder("bob", "default", "other", nil),
		// Mounts a folder of the same name from a different namespace.
		userWithFolder("carol", "default", "shared", ptr.To("tenant-b")),
		// Mounts the folder cross-namespace.
		userWithFolder("dave", "tenant-b", "shared", ptr.To("default")),
	)

	folder := &v1alpha1.SftpgoFolder{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "shared"},
	}

	requests := foldersToUsers(c)(context.Background(), folder)

	g.Expect(requests).To(ConsistOf(
		reconcile.Request{NamespacedName: types.NamespacedName{Namespace: "default", Name: "alice"}},
		reconcile.Request{NamespacedName: types.NamespacedName{Namespace: "tenant-b", Name: "dave"}},
	))
}

func TestFoldersToUsersNoMatches(t *testing.T) {
	g := NewWithT(t)

	c := newFakeClient(userWithFolder("alice", "default", "shared", nil))

	folder := &v1alpha1.SftpgoFolder{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "unrelated"},
	}

	g.Expect(foldersToUsers(c)(context.Background(), folder)).To(BeEmpty())
}

func TestFoldersToUsersIgnoresOtherKinds(t *testing.T) {
	g := NewWithT(t)

	c := newFakeClient()

	g.Expect(foldersToUsers(c)(context.Background(), &v1alpha1.SftpgoUser{})).To(BeNil())
}
