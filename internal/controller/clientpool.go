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
	"sync"
	"unicode/utf8"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-operator/internal/sftpgo"
)

// Admin credential Secret keys.
const (
	secretKeyURL      = "url"
	secretKeyUsername = "username"
	secretKeyPassword = "password"
)

// adminSecretName returns the name of the credential Secret the server
// controller maintains for a SftpgoServer.
func adminSecretName(serverName string) string {
	return serverName + "-admin-user"
}

type poolEntry struct {
	url    string
	client *sftpgo.Client
}

// ClientPool caches one sftpgo.Client per target instance, keyed by the UID
// of the Secret holding the admin credentials. The UID is stable under
// resource renames and unique across clusters. Safe for concurrent use.
type ClientPool struct {
	mu      sync.Mutex
	entries map[types.UID]*poolEntry
}

func NewClientPool() *ClientPool {
	return &ClientPool{entries: map[types.UID]*poolEntry{}}
}

// ResolveServerReference turns a server reference on a domain resource into
// an authorized management-API client. namespace is the namespace of the
// referring resource, used to default the Secret lookup.
func (p *ClientPool) ResolveServerReference(ctx context.Context, reader client.Reader, namespace string, ref *v1alpha1.ServerReference) (*sftpgo.AuthorizedClient, error) {
	secretName, secretNamespace, err := secretCoordinates(namespace, ref)
	if err != nil {
		return nil, err
	}

	secret := &corev1.Secret{}
	if err := reader.Get(ctx, types.NamespacedName{Namespace: secretNamespace, Name: secretName}, secret); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, newUserInputError("admin credential secret %s/%s does not exist", secretNamespace, secretName)
		}

		return nil, fmt.Errorf("failed to read admin credential secret %s/%s: %w", secretNamespace, secretName, err)
	}

	url, err := secretValue(secret, secretKeyURL)
	if err != nil {
		return nil, err
	}

	username, err := secretValue(secret, secretKeyUsername)
	if err != nil {
		return nil, err
	}

	password, err := secretValue(secret, secretKeyPassword)
	if err != nil {
		return nil, err
	}

	if overrides := ref.OverrideValues; overrides != nil {
		if overrides.URL != nil {
			url = *overrides.URL
		}

		if overrides.Username != nil {
			username = *overrides.Username
		}

		if overrides.Password != nil {
			password = *overrides.Password
		}
	}

	instance, err := p.instanceClient(secret.UID, url)
	if err != nil {
		return nil, err
	}

	return instance.Authorized(username, password), nil
}

func (p *ClientPool) instanceClient(uid types.UID, url string) (*sftpgo.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if entry, ok := p.entries[uid]; ok && entry.url == url {
		return entry.client, nil
	}

	instance, err := sftpgo.NewClient(url)
	if err != nil {
		return nil, newUserInputError("invalid server url: %v", err)
	}

	p.entries[uid] = &poolEntry{url: url, client: instance}

	return instance, nil
}

func secretCoordinates(namespace string, ref *v1alpha1.ServerReference) (string, string, error) {
	if ref == nil {
		return "", "", newUserInputError("server reference is missing")
	}

	switch {
	case ref.ConnectionSecret != nil && ref.Name != nil:
		return "", "", newUserInputError("server reference sets both name and connectionSecret")
	case ref.ConnectionSecret != nil:
		secretNamespace := namespace
		if ref.ConnectionSecret.Namespace != nil {
			secretNamespace = *ref.ConnectionSecret.Namespace
		}

		return ref.ConnectionSecret.Name, secretNamespace, nil
	case ref.Name != nil:
		secretNamespace := namespace
		if ref.Namespace != nil {
			secretNamespace = *ref.Namespace
		}

		return adminSecretName(*ref.Name), secretNamespace, nil
	default:
		return "", "", newUserInputError("server reference sets neither name nor connectionSecret")
	}
}

func secretValue(secret *corev1.Secret, key string) (string, error) {
	raw, ok := secret.Data[key]
	if !ok {
		return "", newUserInputError("secret %s/%s is missing key %q", secret.Namespace, secret.Name, key)
	}

	if !utf8.Valid(raw) {
		return "", newUserInputError("secret %s/%s key %q is not valid UTF-8", secret.Namespace, secret.Name, key)
	}

	return string(raw), nil
}
