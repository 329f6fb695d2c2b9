package app

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement"
)

// Options holds the command line state of sfcplacer
type Options struct {
	ConfigFile string
	Args       *v1alpha1.SFCPlacementArgs

	inputFormat string
	output      string
	commit      bool
	sampleRate  float64
}

// NewOptions returns empty options; defaults are applied by Complete
func NewOptions() *Options {
	return &Options{
		Args: &v1alpha1.SFCPlacementArgs{},
	}
}

// AddFlags adds the sfcplacer flags to fs
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "File with an SFCPlacementArgs document. Flags set on the command line take precedence.")

	fs.StringVar(&o.inputFormat, "input-format", "", "Input format: text, csv or yaml (default text)")
	fs.StringVar(&o.Args.TopologyFile, "topology", "", "Topology file (text), or node file (csv)")
	fs.StringVar(&o.Args.LinksFile, "links", "", "Link file (csv)")
	fs.StringVar(&o.Args.VNFFile, "vnfs", "", "VNF catalog file")
	fs.StringVar(&o.Args.SFCFile, "sfcs", "", "SFC file")
	fs.StringVar(&o.Args.ScenarioFile, "scenario", "", "Scenario file holding the whole input (yaml)")

	fs.IntVar(&o.Args.PathNodes, "path-nodes", 0, "Number of distinct nodes in every path (default 5)")
	fs.IntVar(&o.Args.MaxExpansions, "max-expansions", 0, "Partial paths expanded per SFC before giving up, 0 for unlimited")
	fs.StringVar(&o.Args.StartNodePolicy, "start-node-policy", "", "How the start node is chosen: MaxAvailableCPU or MaxTotalCPU")
	fs.BoolVar(&o.commit, "commit", false, "Reserve CPU and bandwidth for every placed SFC")
	fs.IntVar(&o.Args.BandwidthPerChain, "bandwidth-per-chain", 0, "Bandwidth reserved on every hop of a committed path")

	fs.StringVarP(&o.output, "output", "o", "", "Output format: text, json or yaml (default text)")
	fs.StringVar(&o.Args.ChartFile, "chart", "", "Write an HTML chart of path delays to this file")
	fs.StringVar(&o.Args.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")

	fs.StringVar(&o.Args.Tracing.CollectorEndpoint, "otel-collector-endpoint", "", "OTLP gRPC endpoint; tracing is off when empty")
	fs.StringVar(&o.Args.Tracing.ServiceName, "otel-service-name", "", "Service name attached to spans")
	fs.Float64Var(&o.sampleRate, "otel-sample-rate", 1.0, "Ratio of runs traced")
}

// Complete merges the config file with the flags set in fs, then applies
// defaults. Flags that were not set keep the value from the file.
func (o *Options) Complete(fs *pflag.FlagSet) error {
	set := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = f.Value.String()
	})

	if o.ConfigFile != "" {
		args, err := loadConfigFile(o.ConfigFile)
		if err != nil {
			return err
		}
		*o.Args = *args
		for name, value := range set {
			if err := fs.Set(name, value); err != nil {
				return fmt.Errorf("flag --%s: %w", name, err)
			}
		}
	}

	if _, ok := set["input-format"]; ok {
		o.Args.InputFormat = v1alpha1.InputFormat(o.inputFormat)
	}
	if _, ok := set["output"]; ok {
		o.Args.Output = v1alpha1.OutputFormat(o.output)
	}
	if _, ok := set["commit"]; ok {
		o.Args.CommitPlacements = ptr.To(o.commit)
	}
	if _, ok := set["otel-sample-rate"]; ok {
		o.Args.Tracing.SampleRate = ptr.To(o.sampleRate)
	}

	scheme, err := sfcplacement.NewScheme()
	if err != nil {
		return err
	}
	scheme.Default(o.Args)
	return nil
}

// Validate checks the completed arguments
func (o *Options) Validate() error {
	return sfcplacement.ValidateSFCPlacementArgs(o.Args)
}

func loadConfigFile(path string) (*v1alpha1.SFCPlacementArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	args := &v1alpha1.SFCPlacementArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if args.Kind != "" && args.Kind != "SFCPlacementArgs" {
		return nil, fmt.Errorf("config file %s: unexpected kind %q", path, args.Kind)
	}
	if args.APIVersion != "" && args.APIVersion != v1alpha1.SchemeGroupVersion.String() {
		return nil, fmt.Errorf("config file %s: unsupported apiVersion %q", path, args.APIVersion)
	}
	return args, nil
}
