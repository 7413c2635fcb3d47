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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
)

func testScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(v1alpha1.AddToScheme(scheme))

	return scheme
}

func newFakeClient(objs ...client.Object) client.Client {
	return fake.NewClientBuilder().
		WithScheme(testScheme()).
		WithObjects(objs...).
		WithStatusSubresource(
			&v1alpha1.SftpgoUser{},
			&v1alpha1.SftpgoFolder{},
			&v1alpha1.SftpgoAdmin{},
		).
		Build()
}

// fakeEntity is one stored entity of the fake management API.
type fakeEntity struct {
	ID   int64
	Body map[string]any
}

// fakeSftpgo is an in-memory SFTPGo management API for tests. It serves the
// token endpoint and name-keyed CRUD on every collection.
type fakeSftpgo struct {
	Server *httptest.Server

	mu       sync.Mutex
	nextID   int64
	entities map[string]map[string]*fakeEntity
	deletes  []string
}

func newFakeSftpgo() *fakeSftpgo {
	f := &fakeSftpgo{
		entities: map[string]map[string]*fakeEntity{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/token", func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "test-token",
			"expires_at":   time.Now().Add(time.Hour).Format(time.RFC3339),
		})
	})
	mux.HandleFunc("GET /api/v2/{collection}/{name}", f.handleGet)
	mux.HandleFunc("POST /api/v2/{collection}", f.handleCreate)
	mux.HandleFunc("PUT /api/v2/{collection}/{name}", f.handleUpdate)
	mux.HandleFunc("DELETE /api/v2/{collection}/{name}", f.handleDelete)

	f.Server = httptest.NewServer(mux)

	return f
}

func (f *fakeSftpgo) Close() {
	f.Server.Close()
}

// Seed stores an entity with a fixed id without going through the API.
func (f *fakeSftpgo) Seed(collection, name string, id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.entities[collection] == nil {
		f.entities[collection] = map[string]*fakeEntity{}
	}

	f.entities[collection][name] = &fakeEntity{ID: id, Body: map[string]any{}}
}

func (f *fakeSftpgo) Entity(collection, name string) *fakeEntity {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.entities[collection][name]
}

func (f *fakeSftpgo) Deletes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.deletes...)
}

func (f *fakeSftpgo) handleGet(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entity, ok := f.entities[r.PathValue("collection")][r.PathValue("name")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"id": entity.ID})
}

func (f *fakeSftpgo) handleCreate(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)

		return
	}

	name := entityName(body)

	f.mu.Lock()
	defer f.mu.Unlock()

	collection := r.PathValue("collection")
	if f.entities[collection] == nil {
		f.entities[collection] = map[string]*fakeEntity{}
	}

	f.nextID++
	f.entities[collection][name] = &fakeEntity{ID: f.nextID, Body: body}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": f.nextID})
}

func (f *fakeSftpgo) handleUpdate(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)

		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	entity, ok := f.entities[r.PathValue("collection")][r.PathValue("name")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	entity.Body = body

	_ = json.NewEncoder(w).Encode(map[string]any{"id": entity.ID})
}

func (f *fakeSftpgo) handleDelete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	collection, name := r.PathValue("collection"), r.PathValue("name")
	f.deletes = append(f.deletes, collection+"/"+name)

	if _, ok := f.entities[collection][name]; !ok {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	delete(f.entities[collection], name)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
}

func entityName(body map[string]any) string {
	if username, ok := body["username"].(string); ok {
		return username
	}

	name, _ := body["name"].(string)

	return name
}

// connectionSecret builds the Secret a ServerReference with connectionSecret
// points at.
func connectionSecret(url string) *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: "default",
			Name:      "sftpgo-conn",
			UID:       types.UID("conn-secret-uid"),
		},
		Data: map[string][]byte{
			secretKeyURL:      []byte(url),
			secretKeyUsername: []byte("admin"),
			secretKeyPassword: []byte("secret"),
		},
	}
}

func connectionRef() v1alpha1.ServerReference {
	return v1alpha1.ServerReference{
		ConnectionSecret: &v1alpha1.ConnectionSecretRef{Name: "sftpgo-conn"},
	}
}
