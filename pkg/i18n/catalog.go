package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// loadCatalogs reads every *.yaml and *.yml file at the root of fsys. The
// file name without extension is the language tag, e.g. "de.yaml".
func loadCatalogs(fsys fs.FS) (map[language.Tag]map[string]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadCatalog, err)
	}

	catalogs := make(map[language.Tag]map[string]string)
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(entry.Name(), ext))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFailedToReadCatalog, entry.Name(), err)
		}

		var tree map[string]any
		if err := yaml.Unmarshal(content, &tree); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFailedToParseCatalog, entry.Name(), err)
		}

		messages := catalogs[tag]
		if messages == nil {
			messages = make(map[string]string)
			catalogs[tag] = messages
		}
		flatten("", tree, messages)
	}

	if len(catalogs) == 0 {
		return nil, ErrNoCatalogs
	}
	return catalogs, nil
}

// flatten turns nested maps into dotted keys: {validation: {required: x}}
// becomes "validation.required".
func flatten(prefix string, tree map[string]any, out map[string]string) {
	for key, value := range tree {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(key, v, out)
		case nil:
		default:
			out[key] = fmt.Sprint(v)
		}
	}
}
