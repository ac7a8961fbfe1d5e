package boardapiclient

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/hosanna-web/webclient/lib/attachment"
)

// form collects multipart fields and file parts before streaming. Repeated
// fields (identifier and order arrays) are written once per element; a nil
// group writes nothing at all, which is how "field absent" stays distinct
// from "field present but empty" on the wire.
type form struct {
	fields []fieldPart
	files  []filePart
}

type fieldPart struct {
	name  string
	value string
}

type filePart struct {
	field    string
	filename string
	data     []byte
}

func (f *form) addField(name, value string) {
	f.fields = append(f.fields, fieldPart{name: name, value: value})
}

func (f *form) addStrings(name string, values []string) {
	for _, v := range values {
		f.addField(name, v)
	}
}

func (f *form) addInts(name string, values []int) {
	for _, v := range values {
		f.addField(name, strconv.Itoa(v))
	}
}

func (f *form) addFiles(field string, files []attachment.File) {
	for _, file := range files {
		f.files = append(f.files, filePart{field: field, filename: file.Name, data: file.Data})
	}
}

// addKeepNew writes the four array keep/new shape under the given field
// names, e.g. ("keepImageIdentifiers", "keepImageOrders", "newImages",
// "newImageOrders").
func (f *form) addKeepNew(p attachment.KeepNew, keepIDs, keepOrders, newFiles, newOrders string) {
	f.addStrings(keepIDs, p.KeepIdentifiers)
	f.addInts(keepOrders, p.KeepOrders)
	f.addFiles(newFiles, p.NewFiles)
	f.addInts(newOrders, p.NewOrders)
}

// addKeepDelete writes the delete list shape.
func (f *form) addKeepDelete(p attachment.KeepDelete, deleteIDs, newFiles string) {
	f.addStrings(deleteIDs, p.DeleteIdentifiers)
	f.addFiles(newFiles, p.NewFiles)
}

// stream writes the form through a pipe so large file payloads go straight
// to the network buffer instead of being assembled in memory first.
func (f *form) stream() (io.Reader, string) {
	body, writer := io.Pipe()
	mwriter := multipart.NewWriter(writer)

	go func() {
		err := f.write(mwriter)
		if cerr := mwriter.Close(); err == nil {
			err = cerr
		}
		writer.CloseWithError(err)
	}()

	return body, mwriter.FormDataContentType()
}

func (f *form) write(mw *multipart.Writer) error {
	for _, p := range f.fields {
		w, err := mw.CreateFormField(p.name)
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte(p.value)); err != nil {
			return err
		}
	}
	for _, p := range f.files {
		w, err := mw.CreateFormFile(p.field, p.filename)
		if err != nil {
			return err
		}
		if _, err := w.Write(p.data); err != nil {
			return err
		}
	}
	return nil
}
