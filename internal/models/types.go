// internal/models/types.go
package models

// Models is the payload returned by the daemon's /api/tags endpoint.
// Entries keep the order the server sent them in.
type Models struct {
	Models []Model `json:"models"`
}

// Model describes one model available on the daemon.
type Model struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	ModifiedAt string `json:"modified_at"`
	Size       uint64 `json:"size"`
	Digest     string `json:"digest"`
	Details    Detail `json:"details"`
}

// Detail holds the nested details of a model.
// Families is nil when the server omitted it or sent null, and empty when it
// sent an empty list.
type Detail struct {
	ParentModel       string   `json:"parent_model"`
	Format            string   `json:"format"`
	Family            string   `json:"family"`
	Families          []string `json:"families"`
	ParameterSize     string   `json:"parameter_size"`
	QuantizationLevel string   `json:"quantization_level"`
}

// Len returns the number of models in the list.
func (m Models) Len() int {
	return len(m.Models)
}

// Empty reports whether the daemon returned no models.
func (m Models) Empty() bool {
	return len(m.Models) == 0
}

// TotalSize sums the on-disk size of every model.
func (m Models) TotalSize() uint64 {
	var total uint64
	for _, model := range m.Models {
		total += model.Size
	}
	return total
}
