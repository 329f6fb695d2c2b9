package util

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/sagin-nfv/sfcplacer/pkg/api/v1alpha1"
)

// WriteReport serializes report as json or yaml
func WriteReport(w io.Writer, report *v1alpha1.PlacementReport, format v1alpha1.OutputFormat) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case v1alpha1.OutputFormatJSON:
		data, err = json.MarshalIndent(report, "", "  ")
		data = append(data, '\n')
	case v1alpha1.OutputFormatYAML:
		data, err = yaml.Marshal(report)
	default:
		return fmt.Errorf("report format %q is not structured", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = w.Write(data)
	return err
}
