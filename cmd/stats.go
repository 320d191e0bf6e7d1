package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/trirender/renderer"
	"github.com/olekukonko/tablewriter"
)

func frameStatsTable(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Draws", "Skipped draws", "Vertices", "Avg frame time", "Clear color"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Frames),
		fmt.Sprintf("%d", stats.Draws),
		fmt.Sprintf("%d", stats.SkippedDraws),
		fmt.Sprintf("%d", stats.Vertices),
		stats.AvgFrameTime.String(),
		fmt.Sprintf("(%.3f, %.3f, %.3f)", stats.ClearColor[0], stats.ClearColor[1], stats.ClearColor[2]),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", stats.RenderTime.String()})
	table.Render()

	return buf.String()
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(stats))
}

func stageReportTable(reports []stageReport) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Stage", "Source", "Status", "Diagnostic"})
	for _, r := range reports {
		table.Append([]string{r.Name, r.Source, r.Status, r.Diagnostic})
	}
	table.Render()

	return buf.String()
}
