package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// The minimum length of each column in the encoders console table.
const colMinWidth = 21

const (
	bannerTitle = "🔐 MongoDB Password URL Encoder"
	bannerWidth = 40
)

// Report holds everything the console report prints.
type Report struct {
	Password        string
	EncodedPassword string
	URI             string

	// EncoderResults is only populated when the report should show the
	// password encoded by every registered encoder.
	EncoderResults []EncoderResult
}

type EncoderResult struct {
	Name    string
	Encoded string
}

// RenderBanner prints the program banner. It precedes the password
// prompt, so it is not part of RenderConsoleReport.
func RenderBanner(w io.Writer) {
	fmt.Fprintf(w, "%s\n%s\n", bannerTitle, strings.Repeat("=", bannerWidth))
}

// RenderConsoleReport prints the fixed-format report: the original and
// encoded password and the ready-to-paste connection string.
func RenderConsoleReport(w io.Writer, r *Report) {
	fmt.Fprintf(w, "\n✅ Password originale: %s\n", r.Password)
	fmt.Fprintf(w, "🔗 Password encoded:   %s\n", r.EncodedPassword)
	fmt.Fprintf(w, "\n📋 Usa questa nell'URI MongoDB:\n")
	fmt.Fprintf(w, "%s\n", r.URI)

	if len(r.EncoderResults) > 0 {
		renderEncodersTable(w, r.EncoderResults)
	}
}

// renderEncodersTable prints one row per encoder in tabular format.
func renderEncodersTable(w io.Writer, rows []EncoderResult) {
	header := []string{"Encoder", "Encoded value"}

	var buffer strings.Builder

	fmt.Fprintf(&buffer, "\nAll encoders:\n")

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader(header)
	for index := range header {
		table.SetColMinWidth(index, colMinWidth)
	}

	for _, row := range rows {
		table.Append([]string{row.Name, row.Encoded})
	}

	table.Render()

	fmt.Fprint(w, buffer.String())
}
