package cmd

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/erdaltsksn/cui"
	"github.com/fatih/color"
	mErrors "github.com/konradit/lrv2csv/pkg/errors"
	"github.com/konradit/lrv2csv/pkg/exiftool"
	"github.com/konradit/lrv2csv/pkg/lrv"
	"github.com/konradit/lrv2csv/pkg/telemetry"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/disk"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const defaultOutput = "lrv_gps_data.csv"

func runExtract(cmd *cobra.Command, args []string) {
	input := args[0]
	output := defaultOutput
	if len(args) == 2 {
		output = args[1]
	}

	toolPath := getFlagString(cmd, "exiftool", "exiftool")
	timeout := getFlagInt(cmd, "timeout", "60")
	extraExts := getFlagSlice(cmd, "extensions")

	stat, err := os.Stat(input)
	if err != nil {
		cui.Error(mErrors.ErrNotFound(input).Error())
	}

	et := exiftool.New(&toolPath)
	et.Timeout = time.Duration(timeout) * time.Second

	etVersion, err := et.Version()
	if err != nil {
		cui.Error("exiftool is not installed (macOS: brew install exiftool)", mErrors.ErrExifToolNotFound)
	}
	color.Cyan("🔎 exiftool %s", etVersion)

	var files []string
	if stat.IsDir() {
		color.Cyan("📂 Scanning: %s", input)
		printDiskUsage(input)
		files, err = lrv.Discover(input, extraExts)
		if err != nil {
			cui.Error(err.Error())
		}
	} else if lrv.IsCandidate(input, extraExts) {
		color.Cyan("📂 Processing single file: %s", input)
		files = []string{input}
	}

	if len(files) == 0 {
		cui.Error(mErrors.ErrNoFilesFound.Error())
	}
	color.Cyan("📂 Found %d LRV files", len(files))

	extractor := lrv.NewExtractor(&et)

	progress := mpb.New(
		mpb.WithWidth(60),
		mpb.WithRefreshRate(180*time.Millisecond))
	bar := progress.AddBar(int64(len(files)),
		mpb.PrependDecorators(
			decor.Name("📡 extracting"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 60, decor.WCSyncWidth), "✔️",
			),
		),
	)

	results := []telemetry.FileResult{}
	for _, file := range files {
		start := time.Now()
		points := extractor.ExtractFile(file)
		bar.EwmaIncrement(time.Since(start))

		if len(points) == 0 {
			continue
		}
		results = append(results, telemetry.FileResult{
			Filename: filepath.Base(file),
			Points:   points,
		})
	}
	progress.Wait()

	if len(results) == 0 {
		cui.Error(mErrors.ErrNoGPSData.Error())
	}

	rows, err := lrv.WriteCSV(results, output)
	if err != nil {
		cui.Error("Could not write "+output, err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Files Processed", "Files Discovered", "GPS Points", "Output"})
	table.Append([]string{
		strconv.Itoa(len(results)),
		strconv.Itoa(len(files)),
		strconv.Itoa(rows),
		output,
	})
	table.Render()
	color.Green("Done!")
}

func printDiskUsage(path string) {
	di, err := disk.Usage(path)
	if err != nil {
		return
	}
	color.Cyan("\t💾 %s/%s (%0.2f%%)",
		humanize.Bytes(di.Used),
		humanize.Bytes(di.Total),
		di.UsedPercent,
	)
}
