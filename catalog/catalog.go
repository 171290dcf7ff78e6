// Package catalog holds the built-in document requirement definitions. The
// stage-entry hook materializes them as per-application DocumentRequirement
// rows the first time an application enters Document Submission.
package catalog

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/hrsuite/recruit-go/models"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Entry struct {
	DocumentKey   string   `yaml:"document_key"`
	DocumentName  string   `yaml:"document_name"`
	Description   string   `yaml:"description"`
	Category      string   `yaml:"category"`
	IsRequired    bool     `yaml:"is_required"`
	FileFormats   []string `yaml:"file_formats"`
	MaxFileSizeMB int      `yaml:"max_file_size_mb"`
}

type file struct {
	Requirements []Entry `yaml:"requirements"`
}

var (
	once    sync.Once
	entries []Entry
	loadErr error
)

func Load() ([]Entry, error) {
	once.Do(func() {
		var f file
		loadErr = yaml.Unmarshal(catalogYAML, &f)
		entries = f.Requirements
	})
	return entries, loadErr
}

// BuiltInRequirements expands the catalog into requirement rows for one
// application, preserving catalog order.
func BuiltInRequirements(applicationID uint) ([]models.DocumentRequirement, error) {
	loaded, err := Load()
	if err != nil {
		return nil, err
	}
	reqs := make([]models.DocumentRequirement, 0, len(loaded))
	for i, e := range loaded {
		reqs = append(reqs, models.DocumentRequirement{
			ApplicationID: applicationID,
			DocumentKey:   e.DocumentKey,
			DocumentName:  e.DocumentName,
			Description:   e.Description,
			IsRequired:    e.IsRequired,
			FileFormats:   e.FileFormats,
			MaxFileSizeMB: e.MaxFileSizeMB,
			DisplayOrder:  i,
		})
	}
	return reqs, nil
}
