package cli

import (
	"github.com/alexanderramin/systematics/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// formatValue adapts formatter.Format to pflag.Value.
type formatValue struct {
	target *formatter.Format
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(target *formatter.Format) *formatValue {
	return &formatValue{target: target}
}

func (v *formatValue) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v *formatValue) Set(s string) error {
	f, err := formatter.ParseFormat(s)
	if err != nil {
		return err
	}
	*v.target = f
	return nil
}

func (v *formatValue) Type() string { return "format" }

// formatFlag reads the inherited --format flag of cmd.
func formatFlag(cmd *cobra.Command) (formatter.Format, error) {
	f := cmd.Flag("format")
	if f == nil {
		return formatter.FormatText, nil
	}
	return formatter.ParseFormat(f.Value.String())
}
