/*
Copyright 2024 The Kubernetes Authors.

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

package sfcplacement

import (
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/algorithms"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/warmstart"
	"github.com/sagin-nfv/sfcplacer/pkg/tracing"
)

func addDefaultingFuncs(scheme *runtime.Scheme) error {
	return RegisterDefaults(scheme)
}

func RegisterDefaults(scheme *runtime.Scheme) error {
	klog.V(5).InfoS("Registering defaults", "pluginName", PluginName)
	scheme.AddTypeDefaultingFunc(&v1alpha1.SFCPlacementArgs{}, func(obj interface{}) {
		SetDefaults_SFCPlacementArgs(obj.(*v1alpha1.SFCPlacementArgs))
	})
	return nil
}

// NewScheme returns a scheme knowing the v1alpha1 types and their defaults
func NewScheme() (*runtime.Scheme, error) {
	scheme := runtime.NewScheme()
	if err := v1alpha1.AddToScheme(scheme); err != nil {
		return nil, err
	}
	if err := addDefaultingFuncs(scheme); err != nil {
		return nil, err
	}
	return scheme, nil
}

func SetDefaults_SFCPlacementArgs(obj runtime.Object) {
	args := obj.(*v1alpha1.SFCPlacementArgs)

	if args.InputFormat == "" {
		args.InputFormat = v1alpha1.InputFormatText
	}
	if args.PathNodes == 0 {
		args.PathNodes = algorithms.DefaultPathNodes
	}
	if args.StartNodePolicy == "" {
		args.StartNodePolicy = string(warmstart.MaxAvailableCPU)
	}
	if args.CommitPlacements == nil {
		args.CommitPlacements = ptr.To(false)
	}
	if args.Output == "" {
		args.Output = v1alpha1.OutputFormatText
	}
	if args.Tracing.ServiceName == "" {
		args.Tracing.ServiceName = tracing.DefaultServiceName
	}
	if args.Tracing.SampleRate == nil {
		args.Tracing.SampleRate = ptr.To(1.0)
	}
}
