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
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
	"github.com/zlepper/sftpgo-operator/internal/sftpgo"
)

// DomainAdapter supplies the per-kind pieces of the domain reconcile loop:
// the REST collection the kind maps to, the server-side entity name, and the
// wire payload built from the declarative configuration.
type DomainAdapter interface {
	// Path is the management API collection path, e.g. "/api/v2/users".
	Path() string

	// NewObject returns an empty object of the reconciled kind.
	NewObject() v1alpha1.DomainObject

	// EntityName is the server-side name the spec currently asks for.
	EntityName(obj v1alpha1.DomainObject) string

	// BuildRequest maps the declarative configuration to the management API
	// payload. Dependent lookups that are not satisfied yet return
	// NotReadyError.
	BuildRequest(ctx context.Context, reader client.Reader, obj v1alpha1.DomainObject) (any, error)
}

// watchingAdapter is implemented by adapters whose kind needs to be re-queued
// when another kind changes.
type watchingAdapter interface {
	registerWatches(mgr ctrl.Manager, b *ctrl.Builder) *ctrl.Builder
}

// DomainReconciler drives the create/update/delete/rename lifecycle for any
// custom resource that maps to a single management-API entity.
type DomainReconciler struct {
	Client  client.Client
	Adapter DomainAdapter
	Pool    *ClientPool
}

func (r *DomainReconciler) SetupWithManager(mgr ctrl.Manager, options controller.Options) error {
	b := ctrl.NewControllerManagedBy(mgr).
		For(r.Adapter.NewObject()).
		WithOptions(options)

	if watching, ok := r.Adapter.(watchingAdapter); ok {
		b = watching.registerWatches(mgr, b)
	}

	return b.Complete(r)
}

func (r *DomainReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := ctrl.LoggerFrom(ctx)

	// The queued object is a cache snapshot, re-read to avoid acting on a
	// stale status.
	obj := r.Adapter.NewObject()
	if err := r.Client.Get(ctx, req.NamespacedName, obj); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}

		return ctrl.Result{}, err
	}

	authorized, err := r.Pool.ResolveServerReference(ctx, r.Client, obj.GetNamespace(), obj.GetServerReference())
	if err != nil {
		var userErr *UserInputError
		if errors.As(err, &userErr) {
			log.Error(err, "Cannot resolve server reference")
		}

		return ctrl.Result{}, err
	}

	name := r.Adapter.EntityName(obj)

	if !obj.GetDeletionTimestamp().IsZero() {
		return r.reconcileDelete(ctx, authorized, obj, name)
	}

	if err := ensureFinalizer(ctx, r.Client, obj); err != nil {
		return ctrl.Result{}, fmt.Errorf("failed to add finalizer: %w", err)
	}

	switch last := obj.GetLastName(); {
	case last == "":
		// First observation, initialize status before touching the server so
		// a crash never leaves an untracked entity behind.
		if err := r.patchStatus(ctx, obj, name, obj.GetEntityID()); err != nil {
			return ctrl.Result{}, err
		}
	case last != name:
		log.Info("Renaming entity", "from", last, "to", name)

		if err := authorized.DeleteEntity(ctx, r.Adapter.Path(), last); err != nil {
			return ctrl.Result{}, fmt.Errorf("failed to delete renamed entity %q: %w", last, err)
		}

		// Patch status before the create so a crash mid-rename is
		// recoverable on the next pass.
		if err := r.patchStatus(ctx, obj, name, obj.GetEntityID()); err != nil {
			return ctrl.Result{}, err
		}
	}

	body, err := r.Adapter.BuildRequest(ctx, r.Client, obj)
	if err != nil {
		var notReady *NotReadyError
		if errors.As(err, &notReady) {
			log.Info("Dependency not ready, waiting", "reason", notReady.Reason)
		}

		return ctrl.Result{}, err
	}

	existing, err := authorized.GetEntity(ctx, r.Adapter.Path(), name)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("failed to look up entity %q: %w", name, err)
	}

	if existing != nil {
		if err := authorized.UpdateEntity(ctx, r.Adapter.Path(), name, body); err != nil {
			return ctrl.Result{}, fmt.Errorf("failed to update entity %q: %w", name, err)
		}

		if obj.GetEntityID() == nil {
			return ctrl.Result{}, r.patchStatus(ctx, obj, name, &existing.ID)
		}

		return ctrl.Result{}, nil
	}

	created, err := authorized.CreateEntity(ctx, r.Adapter.Path(), body)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("failed to create entity %q: %w", name, err)
	}

	log.Info("Created entity", "name", name, "id", created.ID)

	return ctrl.Result{}, r.patchStatus(ctx, obj, name, &created.ID)
}

func (r *DomainReconciler) reconcileDelete(ctx context.Context, authorized *sftpgo.AuthorizedClient, obj v1alpha1.DomainObject, name string) (ctrl.Result, error) {
	log := ctrl.LoggerFrom(ctx)

	if last := obj.GetLastName(); last != "" && last != name {
		if err := authorized.DeleteEntity(ctx, r.Adapter.Path(), last); err != nil {
			return ctrl.Result{}, fmt.Errorf("failed to delete stale entity %q: %w", last, err)
		}
	}

	if err := authorized.DeleteEntity(ctx, r.Adapter.Path(), name); err != nil {
		return ctrl.Result{}, fmt.Errorf("failed to delete entity %q: %w", name, err)
	}

	log.Info("Deleted entity", "name", name)

	return ctrl.Result{}, removeFinalizer(ctx, r.Client, obj)
}

func (r *DomainReconciler) patchStatus(ctx context.Context, obj v1alpha1.DomainObject, name string, id *int64) error {
	patch := client.MergeFrom(obj.DeepCopyObject().(client.Object))
	obj.SetLastName(name)
	obj.SetEntityID(id)

	if err := r.Client.Status().Patch(ctx, obj, patch); err != nil {
		return fmt.Errorf("failed to patch status: %w", err)
	}

	return nil
}
