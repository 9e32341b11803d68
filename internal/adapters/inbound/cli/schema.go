package cli

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/abdidvp/reachdrift/internal/domain"
)

// reportRecord is one element of the verifier's JSON array as consumed here.
// Records carrying neither key are ignored.
type reportRecord struct {
	Result []domain.PropertyCheck `json:"result,omitempty" jsonschema:"description=Property-mode checks"`
	Goals  []domain.Goal          `json:"goals,omitempty" jsonschema:"description=Coverage-mode goals"`
}

type reportPayload []reportRecord

// reportSchema returns the JSON Schema of the transcript payload.
func reportSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(reportPayload{})
	schema.Title = "Verifier report payload"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return append(data, '\n'), nil
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the verifier report payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := reportSchema()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
