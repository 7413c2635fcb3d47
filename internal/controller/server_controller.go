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
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/intstr"
	utilrand "k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-operator/internal/viperenv"
)

const (
	// fieldOwner is the server-side-apply field manager identity. Forcing
	// conflicts under this name means the controller always wins on fields
	// it renders while leaving other managers' fields alone.
	fieldOwner = client.FieldOwner("sftpgo-operator")

	defaultImage = "drakkan/sftpgo:v2.5"

	containerName = "sftpgo"

	appLabel            = "app"
	managedByLabel      = "managed-by"
	managedByLabelValue = "sftpgo-server-operator"

	defaultHTTPPort int32 = 8080
	defaultSFTPPort int32 = 2022
	defaultFTPPort  int32 = 21

	envPrefix = "SFTPGO"

	envCreateDefaultAdmin   = "SFTPGO_DATA_PROVIDER__CREATE_DEFAULT_ADMIN"
	envDefaultAdminUsername = "SFTPGO_DEFAULT_ADMIN_USERNAME"
	envDefaultAdminPassword = "SFTPGO_DEFAULT_ADMIN_PASSWORD"

	generatedUsernamePrefix = "managed_admin_"
	generatedUsernameLength = 16
	generatedPasswordLength = 50

	// Rendered children are corrected on this cadence even without events.
	serverResyncInterval = time.Hour
)

// ServerReconciler renders a Deployment, Service and admin credential Secret
// for every SftpgoServer.
type ServerReconciler struct {
	Client client.Client
	Scheme *runtime.Scheme
}

func (r *ServerReconciler) SetupWithManager(mgr ctrl.Manager, options controller.Options) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.SftpgoServer{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.Secret{}).
		WithOptions(options).
		Complete(r)
}

func (r *ServerReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := ctrl.LoggerFrom(ctx)

	server := &v1alpha1.SftpgoServer{}
	if err := r.Client.Get(ctx, req.NamespacedName, server); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}

		return ctrl.Result{}, err
	}

	if !server.DeletionTimestamp.IsZero() {
		return ctrl.Result{}, r.reconcileDelete(ctx, server)
	}

	if err := ensureFinalizer(ctx, r.Client, server); err != nil {
		return ctrl.Result{}, fmt.Errorf("failed to add finalizer: %w", err)
	}

	secret, err := r.ensureAdminSecret(ctx, server)
	if err != nil {
		return ctrl.Result{}, err
	}

	ports := expectedPorts(server.Spec.Configuration)

	if err := r.applyService(ctx, server, ports); err != nil {
		return ctrl.Result{}, err
	}

	if err := r.applyDeployment(ctx, server, secret, ports); err != nil {
		return ctrl.Result{}, err
	}

	log.V(1).Info("Server children applied", "ports", len(ports))

	return ctrl.Result{RequeueAfter: serverResyncInterval}, nil
}

// reconcileDelete removes the rendered children before releasing the
// finalizer. Owner references would cascade anyway, explicit deletion keeps
// the ordering under the controller's control.
func (r *ServerReconciler) reconcileDelete(ctx context.Context, server *v1alpha1.SftpgoServer) error {
	children := []client.Object{
		&appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Namespace: server.Namespace, Name: deploymentName(server.Name)}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Namespace: server.Namespace, Name: server.Name}},
		&corev1.Secret{ObjectMeta: metav1.ObjectMeta{Namespace: server.Namespace, Name: adminSecretName(server.Name)}},
	}

	for _, child := range children {
		if err := r.Client.Delete(ctx, child); err != nil && !apierrors.IsNotFound(err) {
			return fmt.Errorf("failed to delete %T %s: %w", child, client.ObjectKeyFromObject(child), err)
		}
	}

	return removeFinalizer(ctx, r.Client, server)
}

// ensureAdminSecret creates the admin credential Secret on first observation
// and keeps its url key current afterwards. Generated credentials are never
// touched again.
func (r *ServerReconciler) ensureAdminSecret(ctx context.Context, server *v1alpha1.SftpgoServer) (*corev1.Secret, error) {
	log := ctrl.LoggerFrom(ctx)

	url := managementURL(server)

	secret := &corev1.Secret{}
	err := r.Client.Get(ctx, types.NamespacedName{Namespace: server.Namespace, Name: adminSecretName(server.Name)}, secret)

	switch {
	case apierrors.IsNotFound(err):
		secret = &corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{
				Namespace: server.Namespace,
				Name:      adminSecretName(server.Name),
				Labels:    instanceLabels(server),
			},
			Data: map[string][]byte{
				secretKeyURL:      []byte(url),
				secretKeyUsername: []byte(generatedUsernamePrefix + utilrand.String(generatedUsernameLength)),
				secretKeyPassword: []byte(utilrand.String(generatedPasswordLength)),
			},
		}

		if err := controllerutil.SetControllerReference(server, secret, r.Scheme); err != nil {
			return nil, err
		}

		if err := r.Client.Create(ctx, secret); err != nil {
			return nil, fmt.Errorf("failed to create admin secret: %w", err)
		}

		log.Info("Created admin credential secret", "secret", secret.Name)

		return secret, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read admin secret: %w", err)
	}

	if string(secret.Data[secretKeyURL]) != url {
		patch := client.MergeFrom(secret.DeepCopy())

		// The data map is nil when the Secret was stripped out-of-band.
		if secret.Data == nil {
			secret.Data = map[string][]byte{}
		}

		secret.Data[secretKeyURL] = []byte(url)

		if err := r.Client.Patch(ctx, secret, patch); err != nil {
			return nil, fmt.Errorf("failed to update admin secret url: %w", err)
		}
	}

	return secret, nil
}

func (r *ServerReconciler) applyService(ctx context.Context, server *v1alpha1.SftpgoServer, ports []portSpec) error {
	labels := instanceLabels(server)

	servicePorts := make([]corev1.ServicePort, 0, len(ports))
	for _, port := range ports {
		servicePorts = append(servicePorts, corev1.ServicePort{
			Name:       port.name,
			Port:       port.number,
			TargetPort: intstr.FromString(port.name),
			Protocol:   corev1.ProtocolTCP,
		})
	}

	service := &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Namespace: server.Namespace,
			Name:      server.Name,
			Labels:    labels,
		},
		Spec: corev1.ServiceSpec{
			Selector: labels,
			Ports:    servicePorts,
		},
	}

	if err := controllerutil.SetControllerReference(server, service, r.Scheme); err != nil {
		return err
	}

	if err := r.Client.Patch(ctx, service, client.Apply, fieldOwner, client.ForceOwnership); err != nil {
		return fmt.Errorf("failed to apply service: %w", err)
	}

	return nil
}

func (r *ServerReconciler) applyDeployment(ctx context.Context, server *v1alpha1.SftpgoServer, secret *corev1.Secret, ports []portSpec) error {
	labels := instanceLabels(server)

	env, err := serverEnvironment(server, secret)
	if err != nil {
		return err
	}

	containerPorts := make([]corev1.ContainerPort, 0, len(ports))
	for _, port := range ports {
		containerPorts = append(containerPorts, corev1.ContainerPort{
			Name:          port.name,
			ContainerPort: port.number,
			Protocol:      corev1.ProtocolTCP,
		})
	}

	image := defaultImage
	if server.Spec.Image != nil {
		image = *server.Spec.Image
	}

	deployment := &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: appsv1.SchemeGroupVersion.String(),
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Namespace: server.Namespace,
			Name:      deploymentName(server.Name),
			Labels:    labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: server.Spec.Replicas,
			Selector: &metav1.LabelSelector{MatchLabels: labels},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: labels},
				Spec: corev1.PodSpec{
					NodeSelector: server.Spec.NodeSelector,
					Containers: []corev1.Container{{
						Name:  containerName,
						Image: image,
						Env:   env,
						Ports: containerPorts,
					}},
				},
			},
		},
	}

	if err := controllerutil.SetControllerReference(server, deployment, r.Scheme); err != nil {
		return err
	}

	if err := r.Client.Patch(ctx, deployment, client.Apply, fieldOwner, client.ForceOwnership); err != nil {
		return fmt.Errorf("failed to apply deployment: %w", err)
	}

	return nil
}

// serverEnvironment flattens the configuration tree and appends the
// bootstrap variables that create the managed admin account on first start.
func serverEnvironment(server *v1alpha1.SftpgoServer, secret *corev1.Secret) ([]corev1.EnvVar, error) {
	var env []corev1.EnvVar

	if config := server.Spec.Configuration; config != nil {
		pairs, err := viperenv.Serialize(envPrefix, *config)
		if err != nil {
			return nil, fmt.Errorf("failed to flatten server configuration: %w", err)
		}

		env = make([]corev1.EnvVar, 0, len(pairs)+3)
		for _, pair := range pairs {
			env = append(env, corev1.EnvVar{Name: pair.Key, Value: pair.Value})
		}
	}

	env = append(env,
		corev1.EnvVar{Name: envCreateDefaultAdmin, Value: "true"},
		corev1.EnvVar{
			Name: envDefaultAdminUsername,
			ValueFrom: &corev1.EnvVarSource{
				SecretKeyRef: &corev1.SecretKeySelector{
					LocalObjectReference: corev1.LocalObjectReference{Name: secret.Name},
					Key:                  secretKeyUsername,
				},
			},
		},
		corev1.EnvVar{
			Name: envDefaultAdminPassword,
			ValueFrom: &corev1.EnvVarSource{
				SecretKeyRef: &corev1.SecretKeySelector{
					LocalObjectReference: corev1.LocalObjectReference{Name: secret.Name},
					Key:                  secretKeyPassword,
				},
			},
		},
	)

	return env, nil
}

func deploymentName(serverName string) string {
	return serverName + "-deployment"
}

// instanceLabels returns the user-supplied labels merged with the labels the
// Service selector matches on. The operator labels win on conflict.
func instanceLabels(server *v1alpha1.SftpgoServer) map[string]string {
	labels := make(map[string]string, len(server.Spec.Labels)+2)

	for key, value := range server.Spec.Labels {
		labels[key] = value
	}

	labels[appLabel] = server.Name
	labels[managedByLabel] = managedByLabelValue

	return labels
}

// managementURL is the in-cluster address of the management API, derived
// from the Service name and the first HTTP binding.
func managementURL(server *v1alpha1.SftpgoServer) string {
	scheme := "http"
	port := defaultHTTPPort

	if config := server.Spec.Configuration; config != nil && config.Httpd != nil && len(config.Httpd.Bindings) > 0 {
		binding := config.Httpd.Bindings[0]

		if binding.Port != nil {
			port = *binding.Port
		}

		if binding.EnableHTTPS != nil && *binding.EnableHTTPS {
			scheme = "https"
		}
	}

	return fmt.Sprintf("%s://%s.%s.svc:%d", scheme, server.Name, server.Namespace, port)
}

type portSpec struct {
	name   string
	number int32
}

// expectedPorts derives the full port set from the configuration: one per
// HTTP binding (at least one, defaulted), one per SFTP and FTP binding, and
// every port of the FTP passive range.
func expectedPorts(config *v1alpha1.ServerConfiguration) []portSpec {
	var ports []portSpec

	httpPorts := 0

	if config != nil && config.Httpd != nil {
		for _, binding := range config.Httpd.Bindings {
			ports = append(ports, portSpec{
				name:   fmt.Sprintf("http-%d", ptr.Deref(binding.Port, defaultHTTPPort)),
				number: ptr.Deref(binding.Port, defaultHTTPPort),
			})
			httpPorts++
		}
	}

	if httpPorts == 0 {
		ports = append(ports, portSpec{name: fmt.Sprintf("http-%d", defaultHTTPPort), number: defaultHTTPPort})
	}

	if config != nil && config.Sftpd != nil {
		for _, binding := range config.Sftpd.Bindings {
			ports = append(ports, portSpec{
				name:   fmt.Sprintf("sftp-%d", ptr.Deref(binding.Port, defaultSFTPPort)),
				number: ptr.Deref(binding.Port, defaultSFTPPort),
			})
		}
	}

	if config != nil && config.Ftpd != nil {
		for _, binding := range config.Ftpd.Bindings {
			ports = append(ports, portSpec{
				name:   fmt.Sprintf("ftp-%d", ptr.Deref(binding.Port, defaultFTPPort)),
				number: ptr.Deref(binding.Port, defaultFTPPort),
			})
		}

		if passive := config.Ftpd.PassivePortRange; passive != nil {
			for port := passive.Start; port <= passive.End; port++ {
				ports = append(ports, portSpec{name: fmt.Sprintf("ftp-data-%d", port), number: port})
			}
		}
	}

	return ports
}
