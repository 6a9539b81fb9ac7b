package output

import (
	"encoding/json"

	"github.com/finplan/finplan/internal/domain"
)

// JSONFormatter renders the summary as JSON, optionally indented.
type JSONFormatter struct {
	Pretty bool
}

func (JSONFormatter) Name() string { return "json" }

func (f JSONFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	if f.Pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}
