// Command sysreg turns a YAML table of AArch64 system registers into typed
// Go accessors and the assembly primitives behind them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cortexa/src/tools/sysreg"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

type generateOptions struct {
	input  string
	output string
	pkg    string
	imp    string
}

func newRootCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "sysreg",
		Short:         "Generate system register accessors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every file written")
	cmd.AddCommand(newGenerateCommand(), newCheckCommand(), newDumpCommand(os.Stdout))
	return cmd
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the register catalog and its primitives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "registers.yaml", "register table")
	flags.StringVarP(&opts.output, "output", "o", ".", "output directory")
	flags.StringVarP(&opts.pkg, "package", "p", "", "package name (default: the table's)")
	flags.StringVar(&opts.imp, "bitfield-import", sysreg.DefaultImport, "import path of the bitfield package")
	return cmd
}

func runGenerate(opts generateOptions) error {
	dev, err := sysreg.LoadDevice(opts.input)
	if err != nil {
		return err
	}
	files, err := sysreg.Generate(dev, sysreg.UserOptions{Pkg: opts.pkg, Import: opts.imp})
	if err != nil {
		return err
	}
	if err := sysreg.WriteFiles(opts.output, files); err != nil {
		return err
	}
	logrus.Infof("generated %d registers from %s into %s", len(dev.Register), opts.input, opts.output)
	return nil
}

func newCheckCommand() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a register table without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := sysreg.LoadDevice(input)
			if err != nil {
				return err
			}
			if err := sysreg.Validate(dev); err != nil {
				return err
			}
			logrus.Infof("%s: %d registers ok", input, len(dev.Register))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "registers.yaml", "register table")
	return cmd
}

func newDumpCommand(out io.Writer) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the table with encodings and instruction words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := sysreg.LoadDevice(input)
			if err != nil {
				return err
			}
			return dump(out, dev)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "registers.yaml", "register table")
	return cmd
}

func dump(w io.Writer, dev *sysreg.DeviceDef) error {
	for _, r := range dev.Register {
		if _, err := fmt.Fprintf(w, "%-28s %-14s %2d %-10s mrs=%#08x msr=%#08x\n",
			r.Name, r.Encoding, r.Size, r.Access, sysreg.MRS(r.Encoding, 0), sysreg.MSR(r.Encoding, 0)); err != nil {
			return err
		}
		for _, f := range r.Field {
			fmt.Fprintf(w, "    %-24s %s\n", f.Name, f.BitRange)
			for _, e := range f.EnumeratedValue {
				fmt.Fprintf(w, "        %-20s %#x\n", e.Name, uint64(e.Value))
			}
		}
	}
	return nil
}
