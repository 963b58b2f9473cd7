package domain

const (
	MessageNoFile           = "Please select a DOCX file."
	MessageConverted        = "File converted and downloaded!"
	MessageConversionFailed = "Conversion failed."
	MessageUploadError      = "Error uploading file."
)

type RegisterForm struct {
	Email    string
	Password string
}

// Complete reports whether both required fields are filled in.
func (f *RegisterForm) Complete() bool {
	return f.Email != "" && f.Password != ""
}

type UploadForm struct {
	selected      *Document
	StatusMessage string
	DownloadToken string // set after a successful conversion
}

// SelectFile replaces any previously selected document.
func (f *UploadForm) SelectFile(doc *Document) {
	f.selected = doc
}

func (f *UploadForm) Selected() *Document {
	return f.selected
}
