// Package app wires the sfcplacer command line to the placement engine
package app

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement"
	"github.com/sagin-nfv/sfcplacer/pkg/framework/plugins/sfcplacement/util"
	"github.com/sagin-nfv/sfcplacer/pkg/loader"
	"github.com/sagin-nfv/sfcplacer/pkg/tracing"
)

// NewSFCPlacerCommand creates the root command. Running it without a
// subcommand is the same as "run".
func NewSFCPlacerCommand(out io.Writer) *cobra.Command {
	o := NewOptions()
	cmd := &cobra.Command{
		Use:   "sfcplacer",
		Short: "sfcplacer places service function chains on a space-air-ground network",
		Long: `sfcplacer reads a network topology, a VNF catalog and a list of service
function chains, then finds for every chain the simple path of fixed length
with the lowest link delay, most delay-tolerant chains first.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, o, out)
		},
	}
	o.AddFlags(cmd.PersistentFlags())

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(&cobra.Command{
		Use:          "run",
		Short:        "Load the input and place every SFC",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, o, out)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:          "validate",
		Short:        "Check the configuration and the input files without searching",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := completeAndValidate(cmd, o); err != nil {
				return err
			}
			return Validate(o.Args, out)
		},
	})
	return cmd
}

func completeAndValidate(cmd *cobra.Command, o *Options) error {
	if err := o.Complete(cmd.Flags()); err != nil {
		return err
	}
	return o.Validate()
}

func runCommand(cmd *cobra.Command, o *Options, out io.Writer) error {
	if err := completeAndValidate(cmd, o); err != nil {
		return err
	}
	return Run(cmd.Context(), o.Args, out)
}

// Validate loads the input named in args and reports its size
func Validate(args *v1alpha1.SFCPlacementArgs, out io.Writer) error {
	in, err := loader.Load(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Input is valid: %d nodes, %d links, %d VNFs, %d SFCs\n",
		in.Topology.Len(), len(in.Topology.Links())/2, in.Catalog.Len(), len(in.SFCs))
	return err
}

// Run performs one placement run with completed and validated arguments
func Run(ctx context.Context, args *v1alpha1.SFCPlacementArgs, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := tracing.Setup(ctx, args.Tracing)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			klog.ErrorS(err, "Failed to shut down tracing")
		}
	}()

	placer, err := sfcplacement.New(ctx, args)
	if err != nil {
		return err
	}

	in, err := loader.Load(args)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}

	text := args.Output == v1alpha1.OutputFormatText
	if text {
		if err := util.PrintTopology(out, in.Topology); err != nil {
			return err
		}
		if err := util.PrintSFCs(out, in.SFCs); err != nil {
			return err
		}
	}

	run, err := placer.Run(ctx, in)
	if err != nil {
		return err
	}

	if text {
		if _, err := fmt.Fprintln(out, "SFCs have been sorted"); err != nil {
			return err
		}
		if err := util.PrintSFCs(out, run.Prioritized); err != nil {
			return err
		}
		for _, r := range run.Results {
			if err := util.PrintPathResult(out, r); err != nil {
				return err
			}
		}
		if err := util.PrintSummary(out, run.Summary); err != nil {
			return err
		}
	} else if err := util.WriteReport(out, placer.NewReport(run), args.Output); err != nil {
		return err
	}

	if args.ChartFile != "" {
		if err := util.PlotPathDelays(run.Results, args.ChartFile); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		klog.V(1).InfoS("Wrote delay chart", "file", args.ChartFile)
	}
	if args.MetricsFile != "" {
		if err := placer.Recorder().WriteToTextfile(args.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		klog.V(1).InfoS("Wrote metrics", "file", args.MetricsFile)
	}
	return nil
}
