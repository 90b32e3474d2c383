package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sarchlab/dramkit/datarecording"
	"github.com/sarchlab/dramkit/trace"
	"github.com/sarchlab/dramkit/util"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Convert a memory trace into transactions.",
	Long: "`trace accesses.trace` prints one transaction per access. " +
		"With --record, the accesses are also stored in a SQLite database " +
		"in the output directory.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		var recorder *trace.Recorder

		record, _ := cmd.Flags().GetString("record")
		if record != "" {
			dir, _ := cmd.Flags().GetString("output-dir")

			dataRecorder, err := openRecording(dir, record)
			if err != nil {
				return err
			}
			defer dataRecorder.Close()

			recorder = trace.NewRecorder(dataRecorder)
		}

		return convertTrace(cmd.Context(), f, cmd.OutOrStdout(), recorder)
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().String("record", "",
		"Record the accesses into <output dir>/<name>.sqlite3")
	traceCmd.Flags().String("output-dir", "",
		"Directory for recordings, overrides DRAMKIT_OUTPUT_DIR")
}

func convertTrace(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	recorder *trace.Recorder,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	reader := trace.NewReader(in)
	readCallback := trace.ReadCallback(nil, cfg.LogRequests)
	writeCallback := trace.WriteCallback(nil, cfg.LogRequests)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		t, err := a.ToTransaction()
		if err != nil {
			return err
		}

		fmt.Fprintln(out, t.String())

		if recorder != nil {
			if err := recorder.RecordAccess(a); err != nil {
				return err
			}
		}

		if t.IsWrite {
			writeCallback(t.Address)
		} else {
			readCallback(t.Address)
		}
	}
}

func openRecording(
	dir, name string,
) (datarecording.DataRecorder, error) {
	if dir == "" {
		dir = cfg.OutputDir
	}

	if !util.DirExist(dir) {
		return nil, fmt.Errorf("output directory %s does not exist", dir)
	}

	fileName, err := util.NextAvailableFileName(
		filepath.Join(dir, name+datarecording.FileExtension))
	if err != nil {
		return nil, err
	}

	return datarecording.New(
		strings.TrimSuffix(fileName, datarecording.FileExtension)), nil
}
