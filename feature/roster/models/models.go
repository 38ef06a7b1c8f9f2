package models

// Document is a roster as stored in object storage.
type Document struct {
	// SchemaVersion is the semantic version of the document layout.
	SchemaVersion string  `json:"schema_version"`
	Name          string  `json:"name"`
	GameSystem    string  `json:"game_system,omitempty"`
	Forces        []Force `json:"forces"`
}

// Force is one detachment of a roster, drawn from a single catalogue.
type Force struct {
	Catalogue string `json:"catalogue"`
	Units     []Unit `json:"units"`
}

// Unit is one selection of a force.
type Unit struct {
	Name     string  `json:"name"`
	Disabled bool    `json:"disabled,omitempty"`
	Models   []Model `json:"models"`
}

// Model is a physical model entry of a unit.
type Model struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary describes a roster without its model list.
type Summary struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	GameSystem string `json:"game_system,omitempty"`
	Forces     int    `json:"forces"`
	Units      int    `json:"units"`
	Models     int    `json:"models"`
}
