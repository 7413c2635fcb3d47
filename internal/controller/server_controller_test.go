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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/gomega"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
)

func newTestServer() *v1alpha1.SftpgoServer {
	return &v1alpha1.SftpgoServer{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "files"},
		Spec: v1alpha1.SftpgoServerSpec{
			Replicas: ptr.To(int32(2)),
			Labels:   map[string]string{"team": "storage"},
			Configuration: &v1alpha1.ServerConfiguration{
				Httpd: &v1alpha1.HttpdConfiguration{
					Bindings: []v1alpha1.HttpdBinding{{Port: ptr.To(int32(9000))}},
				},
				Sftpd: &v1alpha1.SftpdConfiguration{
					Bindings: []v1alpha1.SftpdBinding{{Port: ptr.To(int32(2022))}},
				},
				Ftpd: &v1alpha1.FtpdConfiguration{
					Bindings:         []v1alpha1.FtpdBinding{{Port: ptr.To(int32(21))}},
					PassivePortRange: &v1alpha1.PassivePortRange{Start: 30000, End: 30002},
				},
			},
		},
	}
}

func serverRequest() ctrl.Request {
	return ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "default", Name: "files"}}
}

func newServerReconciler(c client.Client) *ServerReconciler {
	return &ServerReconciler{Client: c, Scheme: testScheme()}
}

func TestExpectedPorts(t *testing.T) {
	g := NewWithT(t)

	ports := expectedPorts(newTestServer().Spec.Configuration)

	names := make([]string, 0, len(ports))
	for _, port := range ports {
		names = append(names, port.name)
	}

	expected := []string{"http-9000", "sftp-2022", "ftp-21", "ftp-data-30000", "ftp-data-30001", "ftp-data-30002"}
	g.Expect(cmp.Diff(expected, names)).To(BeEmpty())
}

func TestExpectedPortsDefaults(t *testing.T) {
	g := NewWithT(t)

	g.Expect(expectedPorts(nil)).To(Equal([]portSpec{{name: "http-8080", number: 8080}}))

	// Bindings without explicit ports fall back to the protocol defaults.
	config := &v1alpha1.ServerConfiguration{
		Httpd: &v1alpha1.HttpdConfiguration{Bindings: []v1alpha1.HttpdBinding{{}}},
		Sftpd: &v1alpha1.SftpdConfiguration{Bindings: []v1alpha1.SftpdBinding{{}}},
		Ftpd:  &v1alpha1.FtpdConfiguration{Bindings: []v1alpha1.FtpdBinding{{}}},
	}

	g.Expect(expectedPorts(config)).To(Equal([]portSpec{
		{name: "http-8080", number: 8080},
		{name: "sftp-2022", number: 2022},
		{name: "ftp-21", number: 21},
	}))
}

func TestManagementURL(t *testing.T) {
	g := NewWithT(t)

	server := newTestServer()
	g.Expect(managementURL(server)).To(Equal("http://files.default.svc:9000"))

	server.Spec.Configuration = nil
	g.Expect(managementURL(server)).To(Equal("http://files.default.svc:8080"))

	server.Spec.Configuration = &v1alpha1.ServerConfiguration{
		Httpd: &v1alpha1.HttpdConfiguration{
			Bindings: []v1alpha1.HttpdBinding{{Port: ptr.To(int32(8443)), EnableHTTPS: ptr.To(true)}},
		},
	}
	g.Expect(managementURL(server)).To(Equal("https://files.default.svc:8443"))
}

func TestInstanceLabels(t *testing.T) {
	g := NewWithT(t)

	server := newTestServer()
	server.Spec.Labels = map[string]string{
		"team": "storage",
		// Operator-owned labels cannot be overridden.
		"app": "sneaky",
	}

	g.Expect(instanceLabels(server)).To(Equal(map[string]string{
		"team":       "storage",
		"app":        "files",
		"managed-by": "sftpgo-server-operator",
	}))
}

func TestServerReconcileCreatesChildren(t *testing.T) {
	g := NewWithT(t)

	c := newFakeClient(newTestServer())
	r := newServerReconciler(c)

	result, err := r.Reconcile(context.Background(), serverRequest())
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(result.RequeueAfter).To(Equal(serverResyncInterval))

	secret := &corev1.Secret{}
	g.Expect(c.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "files-admin-user"}, secret)).To(Succeed())
	g.Expect(string(secret.Data[secretKeyURL])).To(Equal("http://files.default.svc:9000"))
	g.Expect(string(secret.Data[secretKeyUsername])).To(HavePrefix("managed_admin_"))
	g.Expect(secret.Data[secretKeyUsername]).To(HaveLen(len("managed_admin_") + 16))
	g.Expect(secret.Data[secretKeyPassword]).To(HaveLen(50))
	g.Expect(secret.OwnerReferences).To(HaveLen(1))

	service := &corev1.Service{}
	g.Expect(c.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "files"}, service)).To(Succeed())
	g.Expect(service.Spec.Ports).To(HaveLen(6))
	g.Expect(service.Spec.Selector).To(HaveKeyWithValue("app", "files"))

	deployment := &appsv1.Deployment{}
	g.Expect(c.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "files-deployment"}, deployment)).To(Succeed())
	g.Expect(deployment.Spec.Replicas).To(HaveValue(Equal(int32(2))))

	container := deployment.Spec.Template.Spec.Containers[0]
	g.Expect(container.Name).To(Equal("sftpgo"))
	g.Expect(container.Image).To(Equal(defaultImage))
	g.Expect(container.Ports).To(HaveLen(6))

	env := map[string]corev1.EnvVar{}
	for _, entry := range container.Env {
		env[entry.Name] = entry
	}

	g.Expect(env).To(HaveKey("SFTPGO__HTTPD__BINDINGS__0__PORT"))
	g.Expect(env["SFTPGO__HTTPD__BINDINGS__0__PORT"].Value).To(Equal("9000"))
	g.Expect(env["SFTPGO_DATA_PROVIDER__CREATE_DEFAULT_ADMIN"].Value).To(Equal("true"))
	g.Expect(env["SFTPGO_DEFAULT_ADMIN_USERNAME"].ValueFrom.SecretKeyRef.Name).To(Equal("files-admin-user"))
	g.Expect(env["SFTPGO_DEFAULT_ADMIN_PASSWORD"].ValueFrom.SecretKeyRef.Key).To(Equal("password"))
}

func TestServerReconcileKeepsCredentials(t *testing.T) {
	g := NewWithT(t)

	existing := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "files-admin-user"},
		Data: map[string][]byte{
			secretKeyURL:      []byte("http://files.default.svc:8080"),
			secretKeyUsername: []byte("managed_admin_existing0000000000"),
			secretKeyPassword: []byte("existing-password"),
		},
	}

	c := newFakeClient(newTestServer(), existing)
	r := newServerReconciler(c)

	_, err := r.Reconcile(context.Background(), serverRequest())
	g.Expect(err).ToNot(HaveOccurred())

	secret := &corev1.Secret{}
	g.Expect(c.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "files-admin-user"}, secret)).To(Succeed())

	// The url follows the configuration, the generated credentials do not.
	g.Expect(string(secret.Data[secretKeyURL])).To(Equal("http://files.default.svc:9000"))
	g.Expect(string(secret.Data[secretKeyUsername])).To(Equal("managed_admin_existing0000000000"))
	g.Expect(string(secret.Data[secretKeyPassword])).To(Equal("existing-password"))
}

func TestServerReconcileStrippedSecret(t *testing.T) {
	g := NewWithT(t)

	// A Secret edited out-of-band can lose its data map entirely.
	stripped := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "files-admin-user"},
	}

	c := newFakeClient(newTestServer(), stripped)
	r := newServerReconciler(c)

	_, err := r.Reconcile(context.Background(), serverRequest())
	g.Expect(err).ToNot(HaveOccurred())

	secret := &corev1.Secret{}
	g.Expect(c.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "files-admin-user"}, secret)).To(Succeed())
	g.Expect(string(secret.Data[secretKeyURL])).To(Equal("http://files.default.svc:9000"))
}

func TestServerReconcileIdempotent(t *testing.T) {
	g := NewWithT(t)

	c := newFakeClient(newTestServer())
	r := newServerReconciler(c)

	_, err := r.Reconcile(context.Background(), serverRequest())
	g.Expect(err).ToNot(HaveOccurred())

	first := &corev1.Secret{}
	g.Expect(c.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "files-admin-user"}, first)).To(Succeed())

	_, err = r.Reconcile(context.Background(), serverRequest())
	g.Expect(err).ToNot(HaveOccurred())

	second := &corev1.Secret{}
	g.Expect(c.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "files-admin-user"}, second)).To(Succeed())
	g.Expect(second.Data).To(Equal(first.Data))
}

func TestServerReconcileDeletion(t *testing.T) {
	g := NewWithT(t)

	server := newTestServer()
	server.Finalizers = []string{v1alpha1.Finalizer}
	server.DeletionTimestamp = ptr.To(metav1.Now())

	children := []client.Object{
		&appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "files-deployment"}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "files"}},
		&corev1.Secret{ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "files-admin-user"}},
	}

	c := newFakeClient(append([]client.Object{server}, children...)...)
	r := newServerReconciler(c)

	_, err := r.Reconcile(context.Background(), serverRequest())
	g.Expect(err).ToNot(HaveOccurred())

	for _, child := range children {
		err := c.Get(context.Background(), client.ObjectKeyFromObject(child), child.DeepCopyObject().(client.Object))
		g.Expect(err).To(HaveOccurred())
	}

	stored := &v1alpha1.SftpgoServer{}
	g.Expect(c.Get(context.Background(), serverRequest().NamespacedName, stored)).ToNot(Succeed())
}

func TestServerEnvironmentWithoutConfiguration(t *testing.T) {
	g := NewWithT(t)

	server := &v1alpha1.SftpgoServer{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "files"},
	}

	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Namespace: "default", Name: "files-admin-user"},
	}

	env, err := serverEnvironment(server, secret)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(env).To(HaveLen(3))

	names := make([]string, 0, len(env))
	for _, entry := range env {
		names = append(names, entry.Name)
	}

	g.Expect(strings.Join(names, ",")).To(Equal(
		"SFTPGO_DATA_PROVIDER__CREATE_DEFAULT_ADMIN,SFTPGO_DEFAULT_ADMIN_USERNAME,SFTPGO_DEFAULT_ADMIN_PASSWORD"))
}
