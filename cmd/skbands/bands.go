// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dywu101/deeptb/hamiltonian"
	"github.com/dywu101/deeptb/internal/modelfile"
	"github.com/dywu101/deeptb/internal/writers"
)

// newBandsCmd creates the "bands" command.
func newBandsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Solve the band structure of a model file",
		Long:  "Bands reads a YAML model, builds the structure by neighbour search, assembles H and S and writes one row of eigenvalues (eV) per k-point.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBands(cmd, v)
		},
	}

	f := cmd.Flags()
	f.StringP("model", "m", "", "Model file (YAML)")
	f.StringP("output", "o", "-", "Output file, - for stdout")
	f.String("format", "tsv", "Output format (tsv, jsonl)")
	f.Bool("header", true, "Write a header line (tsv)")
	f.Bool("soc", false, "Include spin-orbit coupling")
	f.Int("workers", runtime.GOMAXPROCS(0), "Concurrent k-points")
	f.Int("band-min", 0, "First band to report")
	f.Int("band-max", 0, "One past the last band to report (0 for all)")
	f.String("unit", "", "Override the model's energy unit (hartree, rydberg, ev)")
	for _, name := range []string{"model", "output", "format", "header", "soc", "workers", "band-min", "band-max", "unit"} {
		v.BindPFlag(name, f.Lookup(name))
	}
	return cmd
}

func runBands(cmd *cobra.Command, v *viper.Viper) error {
	log, err := newLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
	if err != nil {
		return err
	}
	path := v.GetString("model")
	if path == "" {
		return fmt.Errorf("bands: --model is required")
	}

	start := time.Now()
	mf, err := modelfile.Load(path)
	if err != nil {
		return err
	}
	st, err := mf.Structure()
	if err != nil {
		return err
	}
	in, err := mf.Integrals(st)
	if err != nil {
		return err
	}
	ks, err := mf.KPoints()
	if err != nil {
		return err
	}
	log.Debug("model loaded", "path", path, "atoms", st.NumAtoms(), "orbitals", st.TotalOrbitals(),
		"hoppings", len(st.HoppingBonds()), "strain", len(st.StrainBonds()))

	unit, err := mf.EnergyUnit()
	if err != nil {
		return err
	}
	if u := v.GetString("unit"); u != "" {
		if unit, err = hamiltonian.ParseUnit(u); err != nil {
			return err
		}
	}
	workers := v.GetInt("workers")
	if workers < 1 {
		return fmt.Errorf("bands: --workers must be >= 1")
	}
	opts := []hamiltonian.SolveOption{hamiltonian.WithUnit(unit), hamiltonian.WithWorkers(workers)}
	if v.GetBool("soc") {
		opts = append(opts, hamiltonian.WithSpinOrbit())
	}
	if lo, hi := v.GetInt("band-min"), v.GetInt("band-max"); hi > 0 {
		if lo < 0 || hi <= lo {
			return fmt.Errorf("bands: invalid band window [%d, %d)", lo, hi)
		}
		opts = append(opts, hamiltonian.WithBandWindow(lo, hi))
	}

	model := hamiltonian.NewModel()
	if err := model.Assemble(st, in); err != nil {
		return err
	}
	res, err := model.Solve(ks.KPoints, st.TimeReversal(), opts...)
	if err != nil {
		return err
	}

	rows := writers.Rows(res, ks.Distance, ks.Labels)
	if err := writeOutput(cmd.OutOrStdout(), v.GetString("output"), v.GetString("format"), v.GetBool("header"), rows); err != nil {
		return err
	}

	log.Info("bands solved",
		"atoms", st.NumAtoms(),
		"orbitals", st.TotalOrbitals(),
		"kpoints", len(ks.KPoints),
		"bands", res.NumBands(),
		"soc", res.SpinOrbit,
		"elapsed", time.Since(start))
	return nil
}

// writeOutput writes rows to stdout for "-" or "", otherwise to a new file
// at path. The file's close error is returned when the write succeeded.
func writeOutput(stdout io.Writer, path, format string, header bool, rows []writers.Row) (err error) {
	if path == "-" || path == "" {
		return writeBands(stdout, format, header, rows)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("bands: closing %s: %w", path, cerr)
		}
	}()
	return writeBands(fh, format, header, rows)
}

func writeBands(out io.Writer, format string, header bool, rows []writers.Row) error {
	in, done := writers.StartBandWriter(out, format, header, len(rows))
	for _, r := range rows {
		in <- r
	}
	close(in)
	return <-done
}
