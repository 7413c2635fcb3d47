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

package main

import (
	"flag"
	"os"
	"time"

	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/util/workqueue"
	"k8s.io/klog/v2"
	"k8s.io/klog/v2/textlogger"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	"github.com/zlepper/sftpgo-operator/api/v1alpha1"
	sftpgocontroller "github.com/zlepper/sftpgo-operator/internal/controller"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")

	// flags.
	enableLeaderElection bool
	watchNamespace       string
	concurrencyNumber    int
	syncPeriod           time.Duration
	retryBaseDelay       time.Duration
	retryMaxDelay        time.Duration
	metricsAddr          string
	healthAddr           string
)

func init() {
	klog.InitFlags(nil)

	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(v1alpha1.AddToScheme(scheme))
}

// InitFlags initializes the flags.
func InitFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&enableLeaderElection, "leader-elect", false,
		"Enable leader election for controller manager. Enabling this will ensure there is only one active controller manager.")

	fs.StringVar(&watchNamespace, "namespace", "",
		"Namespace that the controller watches to reconcile sftpgo objects. If unspecified, the controller watches for sftpgo objects across all namespaces.")

	fs.IntVar(&concurrencyNumber, "concurrency", 1,
		"Number of resources of each kind to process simultaneously")

	fs.DurationVar(&syncPeriod, "sync-period", 10*time.Minute,
		"The minimum interval at which watched resources are reconciled (e.g. 15m)")

	fs.DurationVar(&retryBaseDelay, "retry-base-delay", 15*time.Second,
		"Initial requeue delay after a failed reconcile, doubled on every further failure")

	fs.DurationVar(&retryMaxDelay, "retry-max-delay", 5*time.Minute,
		"Upper bound for the requeue delay after repeated failures")

	fs.StringVar(&metricsAddr, "metrics-bind-addr", ":8080",
		"The address the metric endpoint binds to.")

	fs.StringVar(&healthAddr, "health-addr", ":9440",
		"The address the health endpoint binds to.")
}

func main() {
	InitFlags(pflag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	ctrl.SetLogger(textlogger.NewLogger(textlogger.NewConfig()))
	restConfig := ctrl.GetConfigOrDie()

	var watchNamespaces map[string]cache.Config
	if watchNamespace != "" {
		watchNamespaces = map[string]cache.Config{
			watchNamespace: {},
		}
	}

	ctrlOptions := ctrl.Options{
		Scheme:                 scheme,
		LeaderElection:         enableLeaderElection,
		LeaderElectionID:       "controller-leader-election-sftpgo-operator",
		HealthProbeBindAddress: healthAddr,
		Metrics: metricsserver.Options{
			BindAddress: metricsAddr,
		},
		Cache: cache.Options{
			DefaultNamespaces: watchNamespaces,
			SyncPeriod:        &syncPeriod,
		},
	}

	mgr, err := ctrl.NewManager(restConfig, ctrlOptions)
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	ctx := ctrl.SetupSignalHandler()

	setupChecks(mgr)
	setupReconcilers(mgr)

	setupLog.Info("starting manager")

	if err := mgr.Start(ctx); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}

func setupChecks(mgr ctrl.Manager) {
	if err := mgr.AddReadyzCheck("ping", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to create ready check")
		os.Exit(1)
	}

	if err := mgr.AddHealthzCheck("ping", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to create health check")
		os.Exit(1)
	}
}

func setupReconcilers(mgr ctrl.Manager) {
	pool := sftpgocontroller.NewClientPool()

	if err := (&sftpgocontroller.ServerReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
	}).SetupWithManager(mgr, concurrency(concurrencyNumber)); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "SftpgoServer")
		os.Exit(1)
	}

	if err := (&sftpgocontroller.DomainReconciler{
		Client:  mgr.GetClient(),
		Adapter: sftpgocontroller.UserAdapter{},
		Pool:    pool,
	}).SetupWithManager(mgr, concurrency(concurrencyNumber)); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "SftpgoUser")
		os.Exit(1)
	}

	if err := (&sftpgocontroller.DomainReconciler{
		Client:  mgr.GetClient(),
		Adapter: sftpgocontroller.FolderAdapter{},
		Pool:    pool,
	}).SetupWithManager(mgr, concurrency(concurrencyNumber)); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "SftpgoFolder")
		os.Exit(1)
	}

	if err := (&sftpgocontroller.DomainReconciler{
		Client:  mgr.GetClient(),
		Adapter: sftpgocontroller.AdminAdapter{},
		Pool:    pool,
	}).SetupWithManager(mgr, concurrency(concurrencyNumber)); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "SftpgoAdmin")
		os.Exit(1)
	}
}

func concurrency(c int) controller.Options {
	return controller.Options{
		MaxConcurrentReconciles: c,
		RateLimiter:             workqueue.NewTypedItemExponentialFailureRateLimiter[reconcile.Request](retryBaseDelay, retryMaxDelay),
	}
}
