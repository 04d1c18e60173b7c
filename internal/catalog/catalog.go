package catalog

import (
	"fmt"
	"sort"
	"strings"
)

const (
	MinPhase      = 1
	CompletePhase = 5
)

const (
	SourceBuiltin  = "builtin"
	SourceWorkflow = "workflow"
)

// DocumentType is one catalog entry. Phase and DueDays are filled from the
// enclosing phase when left empty.
type DocumentType struct {
	Type                   string `json:"type" yaml:"type"`
	Title                  string `json:"title" yaml:"title"`
	Description            string `json:"description,omitempty" yaml:"description,omitempty"`
	Phase                  int    `json:"phase" yaml:"phase,omitempty"`
	SortOrder              int    `json:"sort_order" yaml:"sort_order,omitempty"`
	RequiresUpload         bool   `json:"requires_upload" yaml:"requires_upload,omitempty"`
	RequiresSignature      bool   `json:"requires_signature" yaml:"requires_signature,omitempty"`
	RequiresAcknowledgment bool   `json:"requires_acknowledgment" yaml:"requires_acknowledgment,omitempty"`
	Required               *bool  `json:"required,omitempty" yaml:"required,omitempty"`
	DueDays                int    `json:"due_days" yaml:"due_days,omitempty"`
}

// IsRequired defaults to true.
func (d DocumentType) IsRequired() bool {
	return d.Required == nil || *d.Required
}

type Phase struct {
	Number    int            `json:"phase" yaml:"phase"`
	Name      string         `json:"name" yaml:"name"`
	DueDays   int            `json:"due_days" yaml:"due_days"`
	Documents []DocumentType `json:"documents" yaml:"documents"`
}

// Catalog is an immutable, company-resolved document configuration.
type Catalog struct {
	WorkflowID string  `json:"workflow_id,omitempty" yaml:"-"`
	Source     string  `json:"source" yaml:"-"`
	Name       string  `json:"name" yaml:"name"`
	Version    int     `json:"version" yaml:"version"`
	Phases     []Phase `json:"phases" yaml:"phases"`
}

// Normalize fills derived fields and orders phases and documents.
func (c *Catalog) Normalize() {
	sort.SliceStable(c.Phases, func(i, j int) bool { return c.Phases[i].Number < c.Phases[j].Number })
	for pi := range c.Phases {
		p := &c.Phases[pi]
		for di := range p.Documents {
			d := &p.Documents[di]
			d.Phase = p.Number
			if d.SortOrder == 0 {
				d.SortOrder = di + 1
			}
			if d.DueDays <= 0 {
				d.DueDays = p.DueDays
			}
			if d.Required == nil {
				required := true
				d.Required = &required
			}
		}
		sort.SliceStable(p.Documents, func(i, j int) bool { return p.Documents[i].SortOrder < p.Documents[j].SortOrder })
	}
	if c.Version == 0 {
		c.Version = 1
	}
}

func (c Catalog) Validate() error {
	seenPhase := make(map[int]bool, len(c.Phases))
	seenType := make(map[string]bool)
	for _, p := range c.Phases {
		if p.Number < MinPhase || p.Number > CompletePhase {
			return fmt.Errorf("phase %d is outside %d..%d", p.Number, MinPhase, CompletePhase)
		}
		if seenPhase[p.Number] {
			return fmt.Errorf("phase %d is defined twice", p.Number)
		}
		seenPhase[p.Number] = true

		for _, d := range p.Documents {
			if strings.TrimSpace(d.Type) == "" {
				return fmt.Errorf("phase %d has a document without type", p.Number)
			}
			if strings.TrimSpace(d.Title) == "" {
				return fmt.Errorf("document %q has no title", d.Type)
			}
			if seenType[d.Type] {
				return fmt.Errorf("document type %q is defined twice", d.Type)
			}
			seenType[d.Type] = true
		}
	}
	return nil
}

// Documents returns every entry ordered by phase then sort order.
func (c Catalog) Documents() []DocumentType {
	var out []DocumentType
	for _, p := range c.Phases {
		out = append(out, p.Documents...)
	}
	return out
}

func (c Catalog) Lookup(docType string) (DocumentType, bool) {
	for _, p := range c.Phases {
		for _, d := range p.Documents {
			if d.Type == docType {
				return d, true
			}
		}
	}
	return DocumentType{}, false
}

// Resolve maps types to entries, keeping input order. Unknown types are returned
// separately so callers can reject the whole request.
func (c Catalog) Resolve(types []string) (found []DocumentType, unknown []string) {
	for _, t := range types {
		d, ok := c.Lookup(t)
		if !ok {
			unknown = append(unknown, t)
			continue
		}
		found = append(found, d)
	}
	return found, unknown
}

func (c Catalog) PhaseName(number int) string {
	for _, p := range c.Phases {
		if p.Number == number {
			return p.Name
		}
	}
	return ""
}
