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
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
)

func TestEnsureFinalizer(t *testing.T) {
	g := NewWithT(t)

	folder := &v1alpha1.SftpgoFolder{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "shared"},
	}

	c := newFakeClient(folder)

	g.Expect(ensureFinalizer(context.Background(), c, folder)).To(Succeed())
	g.Expect(folder.Finalizers).To(ConsistOf(v1alpha1.Finalizer))

	stored := &v1alpha1.SftpgoFolder{}
	g.Expect(c.Get(context.Background(), client.ObjectKeyFromObject(folder), stored)).To(Succeed())
	g.Expect(stored.Finalizers).To(ConsistOf(v1alpha1.Finalizer))

	// Second call is a no-op.
	g.Expect(ensureFinalizer(context.Background(), c, stored)).To(Succeed())
	g.Expect(stored.Finalizers).To(HaveLen(1))
}

func TestRemoveFinalizer(t *testing.T) {
	g := NewWithT(t)

	folder := &v1alpha1.SftpgoFolder{
		ObjectMeta: metav1.ObjectMeta{
			Namespace:  "default",
			Name:       "shared",
			Finalizers: []string{v1alpha1.Finalizer, "other/finalizer"},
		},
	}

	c := newFakeClient(folder)

	g.Expect(removeFinalizer(context.Background(), c, folder)).To(Succeed())

	stored := &v1alpha1.SftpgoFolder{}
	g.Expect(c.Get(context.Background(), client.ObjectKeyFromObject(folder), stored)).To(Succeed())
	g.Expect(stored.Finalizers).To(ConsistOf("other/finalizer"))

	g.Expect(removeFinalizer(context.Background(), c, stored)).To(Succeed())
}
