package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"jobscout/internal/repository"
)

var ErrExportNotFound = errors.New("no stored postings for client")

const exportSheet = "Jobs"

var exportHeader = []string{"Job Title", "Company Name", "Application Weblink", "Location"}

// Export builds a downloadable workbook from a client's stored postings.
type Export struct {
	clients clientSource
	store   repository.JobStore
	now     func() time.Time
}

func NewExport(clients clientSource, store repository.JobStore) *Export {
	return &Export{clients: clients, store: store, now: time.Now}
}

// BuildWorkbook returns the suggested filename and xlsx bytes for the
// client's current store. A client with no store yet is ErrExportNotFound.
func (e *Export) BuildWorkbook(clientID string) (string, []byte, error) {
	profile, ok := e.clients.Get(clientID)
	if !ok {
		return "", nil, ErrClientNotFound
	}

	postings, err := e.store.List(clientID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return "", nil, ErrExportNotFound
		}
		return "", nil, fmt.Errorf("export for %s: %w", clientID, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return "", nil, fmt.Errorf("export for %s: %w", clientID, err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return "", nil, fmt.Errorf("export for %s: %w", clientID, err)
	}

	for i, p := range postings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", nil, fmt.Errorf("export for %s: %w", clientID, err)
		}
		row := []any{p.Title, p.Company, p.ApplyLink, p.Location}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return "", nil, fmt.Errorf("export for %s: %w", clientID, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("export for %s: %w", clientID, err)
	}

	return exportFilename(profile.Name, e.now()), buf.Bytes(), nil
}

// exportFilename is the sanitized client name, "_jobs_", and a timestamp.
func exportFilename(name string, ts time.Time) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return r
		default:
			return -1
		}
	}, name)
	safe = strings.TrimSpace(safe)
	safe = strings.ReplaceAll(safe, " ", "_")
	if safe == "" {
		safe = "client"
	}
	return fmt.Sprintf("%s_jobs_%s.xlsx", safe, ts.Format("20060102_150405"))
}
