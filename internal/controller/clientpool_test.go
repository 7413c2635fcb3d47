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
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
)

func TestResolveServerReferenceValidation(t *testing.T) {
	tests := []struct {
		name string
		ref  *v1alpha1.ServerReference
	}{
		{
			name: "nil reference",
			ref:  nil,
		},
		{
			name: "neither name nor connectionSecret",
			ref:  &v1alpha1.ServerReference{},
		},
		{
			name: "both name and connectionSecret",
			ref: &v1alpha1.ServerReference{
				Name:             ptr.To("my-server"),
				ConnectionSecret: &v1alpha1.ConnectionSecretRef{Name: "conn"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			pool := NewClientPool()

			_, err := pool.ResolveServerReference(context.Background(), newFakeClient(), "default", tt.ref)
			g.Expect(err).To(HaveOccurred())

			var userErr *UserInputError

			g.Expect(errors.As(err, &userErr)).To(BeTrue())
		})
	}
}

func TestResolveServerReferenceMissingSecret(t *testing.T) {
	g := NewWithT(t)

	pool := NewClientPool()

	_, err := pool.ResolveServerReference(context.Background(), newFakeClient(), "default", ptr.To(connectionRef()))
	g.Expect(err).To(HaveOccurred())

	var userErr *UserInputError

	g.Expect(errors.As(err, &userErr)).To(BeTrue())
	g.Expect(userErr.Reason).To(ContainSubstring("default/sftpgo-conn"))
}

func TestResolveServerReferenceSecretContents(t *testing.T) {
	tests := []struct {
		name string
		data map[string][]byte
	}{
		{
			name: "missing url",
			data: map[string][]byte{
				secretKeyUsername: []byte("admin"),
				secretKeyPassword: []byte("secret"),
			},
		},
		{
			name: "missing password",
			data: map[string][]byte{
				secretKeyURL:      []byte("http://sftpgo.default.svc:8080"),
				secretKeyUsername: []byte("admin"),
			},
		},
		{
			name: "non-utf8 username",
			data: map[string][]byte{
				secretKeyURL:      []byte("http://sftpgo.default.svc:8080"),
				secretKeyUsername: {0xff, 0xfe},
				secretKeyPassword: []byte("secret"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			secret := &corev1.Secret{
				ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "sftpgo-conn", UID: types.UID("uid-1")},
				Data:       tt.data,
			}

			pool := NewClientPool()

			_, err := pool.ResolveServerReference(context.Background(), newFakeClient(secret), "default", ptr.To(connectionRef()))
			g.Expect(err).To(HaveOccurred())

			var userErr *UserInputError

			g.Expect(errors.As(err, &userErr)).To(BeTrue())
		})
	}
}

func TestResolveServerReferenceByServerName(t *testing.T) {
	g := NewWithT(t)

	// The server controller names its credential Secret <server>-admin-user.
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Namespace: "infra", Name: "my-server-admin-user", UID: types.UID("uid-1")},
		Data: map[string][]byte{
			secretKeyURL:      []byte("http://my-server.infra.svc:8080"),
			secretKeyUsername: []byte("managed_admin_abcdefghij123456"),
			secretKeyPassword: []byte("secret"),
		},
	}

	pool := NewClientPool()

	ref := &v1alpha1.ServerReference{Name: ptr.To("my-server"), Namespace: ptr.To("infra")}

	authorized, err := pool.ResolveServerReference(context.Background(), newFakeClient(secret), "default", ref)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(authorized).ToNot(BeNil())
}

func TestResolveServerReferenceCachesByUID(t *testing.T) {
	g := NewWithT(t)

	secret := connectionSecret("http://sftpgo.default.svc:8080")
	c := newFakeClient(secret)

	pool := NewClientPool()

	first, err := pool.ResolveServerReference(context.Background(), c, "default", ptr.To(connectionRef()))
	g.Expect(err).ToNot(HaveOccurred())

	second, err := pool.ResolveServerReference(context.Background(), c, "default", ptr.To(connectionRef()))
	g.Expect(err).ToNot(HaveOccurred())

	// Same Secret, same credentials: the authorized client is shared so the
	// bearer token is reused.
	g.Expect(first).To(BeIdenticalTo(second))
}

func TestResolveServerReferenceOverrides(t *testing.T) {
	g := NewWithT(t)

	secret := connectionSecret("http://unreachable.invalid:8080")
	c := newFakeClient(secret)

	pool := NewClientPool()

	ref := connectionRef()
	ref.OverrideValues = &v1alpha1.ConnectionOverrides{
		URL:      ptr.To("http://localhost:18080"),
		Username: ptr.To("other-admin"),
	}

	authorized, err := pool.ResolveServerReference(context.Background(), c, "default", &ref)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(authorized).ToNot(BeNil())

	// A different username under the same instance gets its own token holder.
	plain, err := pool.ResolveServerReference(context.Background(), c, "default", ptr.To(connectionRef()))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(plain).ToNot(BeIdenticalTo(authorized))
}

func TestResolveServerReferenceInvalidURL(t *testing.T) {
	g := NewWithT(t)

	secret := connectionSecret("ftp://not-http.example.com")
	pool := NewClientPool()

	_, err := pool.ResolveServerReference(context.Background(), newFakeClient(secret), "default", ptr.To(connectionRef()))
	g.Expect(err).To(HaveOccurred())

	var userErr *UserInputError

	g.Expect(errors.As(err, &userErr)).To(BeTrue())
}
