package domain

// Document is a single file picked in the upload form.
type Document struct {
	Name    string
	Content []byte
}

func (d *Document) Size() int64 {
	return int64(len(d.Content))
}
