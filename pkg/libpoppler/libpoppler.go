/*
Package libpoppler loads the GLib interface library of the Poppler PDF
library and exposes the handful of entry points needed to inspect a
document's global attributes: version, metadata, dates, permissions
and page geometry.

Native enum values are translated into the types of the root package
at the boundary; callers never see raw GLib constants.
*/
package libpoppler

import (
	"errors"
	"unsafe"

	"github.com/ebitengine/purego"
)

type gError struct {
	_       uint32
	_       int32
	message *byte
}

var (
	free           func(unsafe.Pointer)
	g_bytes_new    func(bytes unsafe.Pointer, length uint64) uintptr
	g_bytes_unref  func(uintptr)
	g_object_unref func(uintptr)

	poppler_get_version             func() string
	poppler_document_new_from_bytes func(gbytes uintptr, password uintptr, err unsafe.Pointer) uintptr

	poppler_document_get_n_pages     func(uintptr) int
	poppler_document_get_page        func(uintptr, int) uintptr
	poppler_document_get_permissions func(uintptr) uint32

	poppler_document_get_pdf_version_string func(uintptr) *byte
	poppler_document_get_title              func(uintptr) *byte
	poppler_document_get_author             func(uintptr) *byte
	poppler_document_get_subject            func(uintptr) *byte
	poppler_document_get_keywords           func(uintptr) *byte
	poppler_document_get_creator            func(uintptr) *byte
	poppler_document_get_producer           func(uintptr) *byte
	poppler_document_get_creation_date      func(uintptr) int64
	poppler_document_get_modification_date  func(uintptr) int64

	poppler_page_get_text  func(uintptr) *byte
	poppler_page_get_index func(uintptr) int
	poppler_page_get_label func(uintptr) *byte
	poppler_page_get_size  func(page uintptr, width, height *float64)

	defaultLibNames = []string{
		"libpoppler-glib.so",
		"libpoppler-glib.so.8",
		"/opt/homebrew/lib/libpoppler-glib.8.dylib",
		"/opt/homebrew/lib/libpoppler-glib.dylib",
		"libpoppler-glib.8.dylib",
	}

	libLoaded bool
)

// InitLib loads libpoppler-glib and registers all functions this
// package binds. path may be empty to probe a list of default names.
// Returns the path that was loaded. Call once, before anything else
// in this package.
func InitLib(path string) (string, error) {
	var lib uintptr
	var err error
	if len(path) > 0 {
		lib, path, err = tryLoadLib(path)
	} else {
		lib, path, err = tryLoadLib(defaultLibNames...)
	}
	if err != nil {
		return "", err
	}

	purego.RegisterLibFunc(&free, lib, "free")
	purego.RegisterLibFunc(&g_bytes_new, lib, "g_bytes_new")
	purego.RegisterLibFunc(&g_bytes_unref, lib, "g_bytes_unref")
	purego.RegisterLibFunc(&g_object_unref, lib, "g_object_unref")

	purego.RegisterLibFunc(&poppler_get_version, lib, "poppler_get_version")
	purego.RegisterLibFunc(&poppler_document_new_from_bytes, lib, "poppler_document_new_from_bytes")
	purego.RegisterLibFunc(&poppler_document_get_n_pages, lib, "poppler_document_get_n_pages")
	purego.RegisterLibFunc(&poppler_document_get_page, lib, "poppler_document_get_page")
	purego.RegisterLibFunc(&poppler_document_get_permissions, lib, "poppler_document_get_permissions")
	purego.RegisterLibFunc(&poppler_document_get_pdf_version_string, lib, "poppler_document_get_pdf_version_string")
	purego.RegisterLibFunc(&poppler_document_get_title, lib, "poppler_document_get_title")
	purego.RegisterLibFunc(&poppler_document_get_author, lib, "poppler_document_get_author")
	purego.RegisterLibFunc(&poppler_document_get_subject, lib, "poppler_document_get_subject")
	purego.RegisterLibFunc(&poppler_document_get_keywords, lib, "poppler_document_get_keywords")
	purego.RegisterLibFunc(&poppler_document_get_creator, lib, "poppler_document_get_creator")
	purego.RegisterLibFunc(&poppler_document_get_producer, lib, "poppler_document_get_producer")
	purego.RegisterLibFunc(&poppler_document_get_creation_date, lib, "poppler_document_get_creation_date")
	purego.RegisterLibFunc(&poppler_document_get_modification_date, lib, "poppler_document_get_modification_date")
	purego.RegisterLibFunc(&poppler_page_get_text, lib, "poppler_page_get_text")
	purego.RegisterLibFunc(&poppler_page_get_index, lib, "poppler_page_get_index")
	purego.RegisterLibFunc(&poppler_page_get_label, lib, "poppler_page_get_label")
	purego.RegisterLibFunc(&poppler_page_get_size, lib, "poppler_page_get_size")

	libLoaded = true
	return path, nil
}

// Version returns the version of the Poppler shared library.
func Version() string {
	return poppler_get_version()
}

var errNotLoaded = errors.New("libpoppler: not initialized, call InitLib first")

// toStr converts a C char pointer to a Go string and frees the
// native allocation.
func toStr(stringPtr *byte) string {
	if stringPtr == nil {
		return ""
	}
	str := bytePtrToString(stringPtr)
	free(unsafe.Pointer(stringPtr))
	return str
}

func bytePtrToString(p *byte) string {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
