package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dumpdriver/internal/engine"
	"dumpdriver/internal/extract"
	"dumpdriver/internal/fileutil"
	"dumpdriver/internal/history"
	"dumpdriver/internal/logging"
)

type extractView struct {
	Engine   string           `json:"engine" yaml:"engine"`
	BasePath string           `json:"base_path" yaml:"base_path"`
	Metadata extract.Metadata `json:"metadata" yaml:"metadata"`
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var flags targetFlags
	var noHash bool
	var withArtifacts bool

	cmd := &cobra.Command{
		Use:   "extract <base-path>",
		Short: "Scrape an engine run's logs into a metadata record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			id, system, media, err := flags.resolve(cfg)
			if err != nil {
				return err
			}
			base, err := basePath(args[0])
			if err != nil {
				return err
			}
			opCtx := ctx.operationContext(cmd.Context(), string(id), "extract", base)
			logger := ctx.componentLogger(opCtx, "extract")

			var hasher extract.Hasher
			if cfg.Dump.HashImages && !noHash {
				hasher = fileutil.Hasher{}
			}
			md := engine.Extract(id, base, system, media, hasher)
			logger.Info("metadata extracted",
				logging.Bool("hashes", md.HasHashes()),
				logging.Int("roms", len(md.ROMs)),
				logging.Int("artifacts", len(md.Artifacts)),
			)

			status := history.StatusVerified
			if md.Empty() {
				status = history.StatusReview
				logger.Warn("no metadata found in logs")
			}

			stored := md
			stored.Artifacts = nil
			if err := ctx.withHistory(func(store *history.Store) error {
				payload, err := json.Marshal(stored)
				if err != nil {
					return err
				}
				ctx.record(opCtx, store, history.Record{
					Engine:    string(id),
					System:    string(system),
					Media:     string(media),
					BasePath:  base,
					Operation: history.OperationExtract,
					Status:    status,
					Metadata:  payload,
				})
				return nil
			}); err != nil {
				logger.Warn("history unavailable", logging.Error(err))
			}

			if !withArtifacts {
				md.Artifacts = nil
			}
			view := extractView{Engine: string(id), BasePath: base, Metadata: md}
			if handled, err := ctx.writeStructured(cmd, view); handled {
				return err
			}
			renderMetadata(cmd, view, withArtifacts)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&noHash, "no-hash", false, "Do not hash the image when the logs carry no checksums")
	cmd.Flags().BoolVar(&withArtifacts, "artifacts", false, "Include base64 artifact payloads in the output")
	return cmd
}

func renderMetadata(cmd *cobra.Command, view extractView, withArtifacts bool) {
	md := view.Metadata
	rows := [][]string{}
	add := func(label, value string) {
		if value != "" {
			rows = append(rows, []string{label, value})
		}
	}
	if md.Size != nil {
		add("Size", strconv.FormatInt(*md.Size, 10))
	}
	add("CRC32", md.CRC32)
	add("MD5", md.MD5)
	add("SHA-1", md.SHA1)
	add("Region", string(md.Region))
	add("Version", md.Version)
	if len(md.Layerbreaks) > 0 {
		parts := make([]string, 0, len(md.Layerbreaks))
		for _, lb := range md.Layerbreaks {
			parts = append(parts, strconv.FormatInt(lb, 10))
		}
		add("Layerbreaks", strings.Join(parts, ", "))
	}
	add("Serial", md.InternalSerial)
	add("Internal name", md.InternalName)
	add("Disc key", md.DiscKey)
	add("Disc ID", md.DiscID)
	add("Dumper", md.DumperVersion)
	add("PIC", md.PIC)
	add("BCA", md.BCA)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n", view.Engine, view.BasePath)
	if len(rows) == 0 {
		fmt.Fprintln(out, "No metadata found")
	} else {
		fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
	}
	if md.PVD != "" {
		fmt.Fprintln(out, "Primary Volume Descriptor:")
		fmt.Fprint(out, md.PVD)
		if !strings.HasSuffix(md.PVD, "\n") {
			fmt.Fprintln(out)
		}
	}
	if len(md.ROMs) > 0 {
		romRows := make([][]string, 0, len(md.ROMs))
		for _, rom := range md.ROMs {
			romRows = append(romRows, []string{rom.Name, strconv.FormatInt(rom.Size, 10), rom.CRC32, rom.SHA1})
		}
		fmt.Fprintln(out, renderTable([]string{"ROM", "Size", "CRC32", "SHA-1"}, romRows, []columnAlignment{alignLeft, alignRight, alignLeft, alignLeft}))
	}
	if withArtifacts && len(md.Artifacts) > 0 {
		keys := make([]string, 0, len(md.Artifacts))
		for key := range md.Artifacts {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Fprintf(out, "artifact %s: %s\n", key, md.Artifacts[key])
		}
	}
}
