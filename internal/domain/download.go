package domain

const (
	DownloadName        = "converted.xlsx"
	SpreadsheetMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Download struct {
	Name        string
	ContentType string
	Content     []byte
}

// NewSpreadsheetDownload names the content as a spreadsheet regardless of what it holds.
func NewSpreadsheetDownload(content []byte) *Download {
	return &Download{
		Name:        DownloadName,
		ContentType: SpreadsheetMIMEType,
		Content:     content,
	}
}
