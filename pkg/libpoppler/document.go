package libpoppler

import (
	"errors"
	"strconv"
	"time"
	"unsafe"

	"github.com/gabriel-vasile/mimetype"

	globals "github.com/johbar/go-poppler-globals"
)

// Document is a PDF opened by Poppler. The underlying native object
// stays alive until Close is called; the byte slice passed to Load
// must not be modified during that time.
type Document struct {
	handle uintptr
	data   *[]byte
	pages  int
}

// DocumentInfo holds a document's metadata entries. String fields are
// empty and times are zero when the document does not set them.
type DocumentInfo struct {
	PdfVersion, Title, Author, Subject, Keywords, Creator, Producer string
	Created, Modified                                               time.Time
	Pages                                                           int
}

var errNoPdf = errors.New("libpoppler: data is not a PDF")

// Load opens a PDF from a byte slice.
func Load(data []byte) (*Document, error) {
	if !libLoaded {
		return nil, errNotLoaded
	}
	if len(data) == 0 || mimetype.Detect(data).Extension() != ".pdf" {
		return nil, errNoPdf
	}
	ptr := unsafe.Pointer(&data[0])
	gbytes := g_bytes_new(ptr, uint64(len(data)))
	defer g_bytes_unref(gbytes)
	var gerr *gError
	handle := poppler_document_new_from_bytes(gbytes, 0, unsafe.Pointer(&gerr))
	if handle == 0 {
		return nil, errors.New("libpoppler: " + toStr(gerr.message))
	}
	d := &Document{handle: handle, data: &data, pages: poppler_document_get_n_pages(handle)}
	return d, nil
}

// Pages returns the number of pages in the document.
func (d *Document) Pages() int {
	return d.pages
}

// Permissions returns the operations permitted on the document,
// translated from the native flag values.
func (d *Document) Permissions() globals.Permissions {
	return permissionsFromNative(poppler_document_get_permissions(d.handle))
}

// GetPage opens a page by index (zero-based). Out of range indices
// are reported through the debug hook and return nil.
func (d *Document) GetPage(i int) *Page {
	if i < 0 || i >= d.pages {
		globals.DebugError("page index out of range: " + strconv.Itoa(i))
		return nil
	}
	return &Page{handle: poppler_document_get_page(d.handle, i)}
}

// Info returns the document's metadata.
func (d *Document) Info() DocumentInfo {
	info := DocumentInfo{
		PdfVersion: toStr(poppler_document_get_pdf_version_string(d.handle)),
		Title:      toStr(poppler_document_get_title(d.handle)),
		Author:     toStr(poppler_document_get_author(d.handle)),
		Subject:    toStr(poppler_document_get_subject(d.handle)),
		Keywords:   toStr(poppler_document_get_keywords(d.handle)),
		Creator:    toStr(poppler_document_get_creator(d.handle)),
		Producer:   toStr(poppler_document_get_producer(d.handle)),
		Pages:      d.pages,
	}
	if ts := poppler_document_get_creation_date(d.handle); ts > 0 {
		info.Created = time.Unix(ts, 0)
	}
	if ts := poppler_document_get_modification_date(d.handle); ts > 0 {
		info.Modified = time.Unix(ts, 0)
	}
	return info
}

// Close releases the native document. The Document must not be used
// afterwards.
func (d *Document) Close() {
	if d.handle != 0 {
		g_object_unref(d.handle)
		d.handle = 0
	}
}
