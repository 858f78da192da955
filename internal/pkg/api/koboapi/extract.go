package koboapi

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/kobotools/kobotab/internal/pkg/export/excel"
	"github.com/kobotools/kobotab/internal/pkg/flatten"
)

// ExtractTables fetches the submissions of the asset and assembles them
// into related flat tables. A nil result means the asset has no submissions.
func (a *Api) ExtractTables(uid string, cfg flatten.Config, opts SubmissionOptions) (*flatten.Result, error) {
	submissions, err := a.GetSubmissions(uid, opts)
	if err != nil {
		return nil, err
	}
	a.logger.Debugf(`Retrieved %d submissions for asset "%s"`, len(submissions), uid)

	result, err := flatten.Assemble(submissions, cfg)
	if err != nil {
		return nil, err
	}
	if result == nil {
		a.logger.Debugf(`Asset "%s" has no submissions`, uid)
		return nil, nil
	}

	a.logger.Debugf(`Assembled %d tables for asset "%s"`, len(result.Order), uid)
	return result, nil
}

// ExportExcel fetches, assembles and writes the asset data to a xlsx file.
// An empty path defaults to "{uid}_{asset name}.xlsx" in the working dir.
// Returns the written path.
func (a *Api) ExportExcel(fs afero.Fs, uid string, path string, cfg flatten.Config, opts SubmissionOptions) (string, error) {
	result, err := a.ExtractTables(uid, cfg, opts)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = a.defaultExportPath(uid)
	}

	writer := excel.NewWriter(fs, a.logger)
	if err := writer.Write(result, path, cfg.MaxSheetNameLength); err != nil {
		return "", err
	}
	return path, nil
}

func (a *Api) defaultExportPath(uid string) string {
	asset, err := a.GetAsset(uid)
	if err != nil {
		a.logger.Debugf(`Cannot load asset "%s" for the file name: %s`, uid, err)
	} else if name := safeFileName(asset.Name); name != "" {
		return fmt.Sprintf("%s_%s.xlsx", uid, name)
	}
	return fmt.Sprintf("%s.xlsx", uid)
}

// safeFileName keeps letters, digits, dashes and underscores,
// spaces become underscores.
func safeFileName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
